package constants

import (
	"math"
	"testing"
)

// TestBulletRangeCoversSpawnVolume verifies a projectile lives long enough to cross the spawn cube
func TestBulletRangeCoversSpawnVolume(t *testing.T) {
	// Farthest corner of the cube as seen from the opposite corner
	diagonal := 2 * EnemySpawnRadius * math.Sqrt(3)
	travel := BulletSpeed * BulletTTL.Seconds()

	if travel <= diagonal {
		t.Errorf("Bullet travel %.1f does not exceed spawn cube diagonal %.1f", travel, diagonal)
	}
}

// TestContactRadiusExceedsModels verifies a visual touch always registers as a hit
func TestContactRadiusExceedsModels(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
	}{
		{name: "Enemy model", radius: EnemyModelRadius},
		{name: "Bullet model", radius: BulletModelRadius},
		{name: "Both models", radius: EnemyModelRadius + BulletModelRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.radius >= ContactRadius {
				t.Errorf("%s radius %.2f not inside contact radius %.2f", tt.name, tt.radius, ContactRadius)
			}
		})
	}
}
