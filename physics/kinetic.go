package physics

import (
	"github.com/lixenwraith/ufo-shooter/component"
)

// AdvanceProjectile integrates one step of constant velocity motion
// position += direction * speed * dt
func AdvanceProjectile(p *component.Projectile, dt, speed float32) {
	p.Position = p.Position.Add(p.Direction.Mul(speed * dt))
}

// AdvanceProjectiles integrates every projectile in place
func AdvanceProjectiles(projectiles []component.Projectile, dt, speed float32) {
	for i := range projectiles {
		AdvanceProjectile(&projectiles[i], dt, speed)
	}
}

// TargetOrientation returns the animated rotation of t at game time now
// Pure: repeated calls with the same inputs return the same value
func TargetOrientation(t component.Target, now float64) component.Orientation {
	return component.Orientation{
		Angle: t.RotationPhase + float32(now),
		Axis:  t.RotationAxis,
	}
}
