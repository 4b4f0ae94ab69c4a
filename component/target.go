package component

import "github.com/go-gl/mathgl/mgl32"

// Target is a stationary rotating enemy
// All fields are fixed at spawn; the entity is only ever removed, never mutated
type Target struct {
	Position      mgl32.Vec3
	RotationAxis  mgl32.Vec3 // Per-axis uniform [0,1], intentionally not normalized
	RotationPhase float32    // Initial angle offset, uniform [0,360)
	SpawnedAt     float64    // Clock seconds
}

// Orientation is the animated rotation of a target at a given time
type Orientation struct {
	Angle float32
	Axis  mgl32.Vec3
}
