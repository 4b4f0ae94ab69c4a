package systems

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/ufo-shooter/component"
)

// FireTrigger recognizes the trailing edge of the fire button
// Holding the button fires nothing; releasing it fires once
type FireTrigger struct {
	prev bool
}

// Update records the current button state and reports a pressed->released transition
func (f *FireTrigger) Update(pressed bool) bool {
	fired := f.prev && !pressed
	f.prev = pressed
	return fired
}

// Reset forgets any pending press
func (f *FireTrigger) Reset() {
	f.prev = false
}

// NewProjectile spawns a projectile muzzleOffset ahead of the camera along its view direction
func NewProjectile(cameraPos, cameraDir mgl32.Vec3, muzzleOffset float32, now float64) component.Projectile {
	return component.Projectile{
		Position:  cameraPos.Add(cameraDir.Mul(muzzleOffset)),
		Direction: cameraDir,
		FiredAt:   now,
	}
}
