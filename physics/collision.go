package physics

import "github.com/go-gl/mathgl/mgl32"

// InContact reports whether two points are strictly closer than radius
func InContact(a, b mgl32.Vec3, radius float32) bool {
	return a.Sub(b).Len() < radius
}

// Distance is the Euclidean distance between two points
func Distance(a, b mgl32.Vec3) float32 {
	return a.Sub(b).Len()
}
