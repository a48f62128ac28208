package game

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"corridor/internal/config"
)

// Resize is a framebuffer size notification.
type Resize struct {
	Width, Height int
}

// initWindow opens the GL window and routes framebuffer size changes into
// the returned channel. Only the latest size is kept when the loop falls
// behind.
func initWindow(cfg config.Window) (*glfw.Window, <-chan Resize, error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	resizes := make(chan Resize, 1)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		select {
		case <-resizes:
		default:
		}
		select {
		case resizes <- Resize{Width: w, Height: h}:
		default:
		}
	})
	return window, resizes, nil
}
