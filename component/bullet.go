package component

import "github.com/go-gl/mathgl/mgl32"

// Projectile is a player-fired bullet moving at constant velocity
type Projectile struct {
	Position  mgl32.Vec3 // Advanced every frame
	Direction mgl32.Vec3 // Unit vector, fixed at creation
	FiredAt   float64    // Clock seconds
}

// Age returns seconds since the projectile was fired
func (p Projectile) Age(now float64) float64 {
	if now < p.FiredAt {
		return 0
	}
	return now - p.FiredAt
}
