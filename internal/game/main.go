// Package game hosts the corridor: window, input, audio, rendering and the
// frame loop that drives the hallway and the player.
package game

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"corridor/internal/config"
	"corridor/internal/hallway"
	"corridor/internal/player"
)

// Run opens the window and runs the frame loop until the window closes or
// Escape is pressed.
func Run(cfg config.File, log *slog.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, resizes, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("gl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	var audio *AudioSystem
	if cfg.Audio.Enabled {
		audio, err = InitAudio(cfg.Audio.SFXVolume, cfg.Audio.MusicVolume)
		if err != nil {
			log.Warn("audio init failed, continuing without sound", "err", err)
			audio = nil
		} else {
			go func() {
				<-audio.ready
				audio.StartHum()
			}()
			defer audio.Close()
		}
	}

	sc := newScene()
	hall, err := hallway.CreateHallway(sc, cfg.Hallway, hallway.WithLogger(log))
	if err != nil {
		return fmt.Errorf("hallway: %w", err)
	}
	runner := player.New(cfg.Player, cfg.Hallway.Width)
	sc.Add(runner.Node())

	bus := NewEventBus()
	hall.OnRecycle(func(ev hallway.RecycleEvent) {
		bus.Emit(Event{Type: EventSegmentRecycled, Z: ev.Offset, Data: ev.Index})
	})
	bus.Subscribe(EventJump, func(Event) { audio.Play(SoundJump) })
	bus.Subscribe(EventLand, func(Event) { audio.Play(SoundLand) })
	bus.Subscribe(EventSegmentRecycled, func(e Event) {
		audio.Play(SoundRecycle)
		log.Debug("segment recycled", "index", e.Data, "offset", e.Z)
	})

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	fbW, fbH := window.GetFramebufferSize()
	cam := NewCamera(fbW, fbH)
	keys := NewKeyboard(window)

	muted := false
	titleAcc := 0.0
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := clampF(now-last, 0, cfg.MaxFrameDT)
		last = now

		glfw.PollEvents()
		if keys.Quit() {
			window.SetShouldClose(true)
			continue
		}

	drain:
		for {
			select {
			case r := <-resizes:
				fbW, fbH = r.Width, r.Height
				cam.Resize(fbW, fbH)
			default:
				break drain
			}
		}
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		keys.Poll()
		if keys.Mute() {
			muted = !muted
			applyVolume(audio, cfg.Audio, muted)
			log.Debug("audio mute toggled", "muted", muted)
		}
		st := runner.Update(dt, keys)
		if st.Jumped {
			bus.Emit(Event{Type: EventJump, X: runner.X})
		}
		if st.Landed {
			bus.Emit(Event{Type: EventLand, X: runner.X})
		}
		hallway.UpdateHallway(hall, dt)
		bus.Flush()

		rend.Render(sc, cam, fbW, fbH)

		titleAcc += dt
		if titleAcc >= TitleInterval {
			titleAcc = 0
			window.SetTitle(fmt.Sprintf("%s - %.0fm", cfg.Window.Title, hall.Distance()))
		}
		window.SwapBuffers()
	}
	log.Info("shutdown", "distance", hall.Distance(), "recycled", hall.Recycled())
	return nil
}

// applyVolume restores the configured levels or silences both channels.
func applyVolume(a *AudioSystem, cfg config.Audio, muted bool) {
	if muted {
		a.SetSFXVolume(0)
		a.SetMusicVolume(0)
		return
	}
	a.SetSFXVolume(cfg.SFXVolume)
	a.SetMusicVolume(cfg.MusicVolume)
}
