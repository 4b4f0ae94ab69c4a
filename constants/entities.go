package constants

// --- Model Geometry ---
const (
	// EnemyModelRadius is the bounding radius of the target model in world units
	EnemyModelRadius = 1.5

	// BulletModelRadius is the bounding radius of the projectile model in world units
	BulletModelRadius = 0.25
)

// --- Camera Defaults ---
const (
	// CameraStartX, CameraStartY, CameraStartZ place the viewpoint outside the spawn cube center
	CameraStartX = 0.0
	CameraStartY = 0.0
	CameraStartZ = 5.0

	// CameraFOVDegrees is the vertical field of view
	CameraFOVDegrees = 45.0

	// CameraNear and CameraFar bound the perspective frustum
	CameraNear = 0.1
	CameraFar  = 100.0

	// CameraMoveSpeed is the walk speed in units per second
	CameraMoveSpeed = 3.0

	// CameraTurnSpeed is the keyboard look rate in radians per second
	CameraTurnSpeed = 1.5

	// CameraMouseSensitivity is radians of look per pixel of mouse motion
	CameraMouseSensitivity = 0.005

	// CameraPitchLimitDegrees clamps vertical look short of the poles
	CameraPitchLimitDegrees = 89.0
)
