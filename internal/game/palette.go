package game

import "corridor/internal/scene"

var Palette = struct {
	Background scene.Color
	Ambient    scene.Color
	Light      scene.Color
}{
	Background: scene.Hex(0x111111),
	Ambient:    scene.Hex(0x404040),
	Light:      scene.Hex(0xffffff),
}

// newScene returns an empty scene lit the way the corridor expects.
func newScene() *scene.Scene {
	sc := scene.New()
	sc.Background = Palette.Background
	sc.Ambient = Palette.Ambient
	sc.Light = scene.PointLight{
		Position:  scene.Vec3{Y: LightY},
		Color:     Palette.Light,
		Intensity: LightIntensity,
		Range:     LightRange,
	}
	return sc
}
