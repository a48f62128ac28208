package game

// Camera defaults (world units).
const (
	CameraFOV     = 60.0 // degrees, vertical
	CameraNear    = 0.1
	CameraFar     = 500.0
	CameraEyeX    = 0.0
	CameraEyeY    = 6.0
	CameraEyeZ    = 10.0
	CameraTargetX = 0.0
	CameraTargetY = 2.0
	CameraTargetZ = -10.0
)

// Ceiling light.
const (
	LightY         = 9.0
	LightIntensity = 80.0
	LightRange     = 50.0
)

// Window title refresh interval in seconds.
const TitleInterval = 0.5
