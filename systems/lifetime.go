package systems

import "github.com/lixenwraith/ufo-shooter/component"

// ProjectileExpirer is the storage the lifetime system prunes
type ProjectileExpirer interface {
	ExpireProjectiles(pred func(component.Projectile) bool) int
}

// LifetimeSystem despawns projectiles that outlived their TTL
// A non-positive TTL disables expiry and projectiles that miss live forever
type LifetimeSystem struct {
	ttl float64 // Seconds
}

// NewLifetimeSystem creates a lifetime system with a TTL in seconds
func NewLifetimeSystem(ttl float64) *LifetimeSystem {
	return &LifetimeSystem{ttl: ttl}
}

// Enabled reports whether projectiles expire at all
func (s *LifetimeSystem) Enabled() bool {
	return s.ttl > 0
}

// Expired reports whether p is past its TTL at now
func (s *LifetimeSystem) Expired(p component.Projectile, now float64) bool {
	return s.Enabled() && p.Age(now) > s.ttl
}

// Update removes expired projectiles and returns how many were removed
func (s *LifetimeSystem) Update(store ProjectileExpirer, now float64) int {
	if !s.Enabled() {
		return 0
	}
	return store.ExpireProjectiles(func(p component.Projectile) bool {
		return s.Expired(p, now)
	})
}
