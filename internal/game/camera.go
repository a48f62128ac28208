package game

import "github.com/go-gl/mathgl/mgl32"

// Camera is a fixed perspective camera looking down the corridor.
type Camera struct {
	Eye, Target mgl32.Vec3
	FOV         float32 // degrees
	Near, Far   float32
	Aspect      float32
}

func NewCamera(fbW, fbH int) *Camera {
	c := &Camera{
		Eye:    mgl32.Vec3{CameraEyeX, CameraEyeY, CameraEyeZ},
		Target: mgl32.Vec3{CameraTargetX, CameraTargetY, CameraTargetZ},
		FOV:    CameraFOV,
		Near:   CameraNear,
		Far:    CameraFar,
	}
	c.Resize(fbW, fbH)
	return c
}

// Resize updates the aspect ratio; zero sizes (minimised) are ignored.
func (c *Camera) Resize(fbW, fbH int) {
	if fbW <= 0 || fbH <= 0 {
		return
	}
	c.Aspect = float32(fbW) / float32(fbH)
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}
