package game

import "github.com/go-gl/glfw/v3.3/glfw"

var (
	leftKeys  = []glfw.Key{glfw.KeyA, glfw.KeyLeft}
	rightKeys = []glfw.Key{glfw.KeyD, glfw.KeyRight}
	jumpKeys  = []glfw.Key{glfw.KeySpace, glfw.KeyW, glfw.KeyUp}
)

// Keyboard samples key state once per frame and implements player.Input.
type Keyboard struct {
	window *glfw.Window

	left, right bool
	jump        bool
	prevJump    bool
	mute        bool
	prevMute    bool
}

func NewKeyboard(window *glfw.Window) *Keyboard {
	return &Keyboard{window: window}
}

// Poll samples the keys. Call once per frame after glfw.PollEvents.
func (k *Keyboard) Poll() {
	k.left = k.anyDown(leftKeys)
	k.right = k.anyDown(rightKeys)
	down := k.anyDown(jumpKeys)
	k.jump = down && !k.prevJump
	k.prevJump = down
	m := k.window.GetKey(glfw.KeyM) == glfw.Press
	k.mute = m && !k.prevMute
	k.prevMute = m
}

func (k *Keyboard) anyDown(keys []glfw.Key) bool {
	for _, key := range keys {
		if k.window.GetKey(key) == glfw.Press {
			return true
		}
	}
	return false
}

func (k *Keyboard) Left() bool  { return k.left }
func (k *Keyboard) Right() bool { return k.right }

// Jump is true only on the frame a jump key went down.
func (k *Keyboard) Jump() bool { return k.jump }

// Mute is true only on the frame M went down.
func (k *Keyboard) Mute() bool { return k.mute }

func (k *Keyboard) Quit() bool {
	return k.window.GetKey(glfw.KeyEscape) == glfw.Press
}
