package engine

import "github.com/lixenwraith/ufo-shooter/component"

// EntityStore exclusively owns all live targets and projectiles
type EntityStore struct {
	Targets     *OrderedStore[component.Target]
	Projectiles *OrderedStore[component.Projectile]
}

// NewEntityStore creates empty collections sized for the expected population
func NewEntityStore(targetCapacity, projectileCapacity int) *EntityStore {
	return &EntityStore{
		Targets:     NewOrderedStore[component.Target](targetCapacity),
		Projectiles: NewOrderedStore[component.Projectile](projectileCapacity),
	}
}

func (s *EntityStore) AddTarget(t component.Target) {
	s.Targets.Add(t)
}

func (s *EntityStore) AddProjectile(p component.Projectile) {
	s.Projectiles.Add(p)
}

// TargetsView returns live targets in spawn order, borrowed for the current frame
func (s *EntityStore) TargetsView() []component.Target {
	return s.Targets.All()
}

// ProjectilesView returns live projectiles in fire order, borrowed for the current frame
func (s *EntityStore) ProjectilesView() []component.Projectile {
	return s.Projectiles.All()
}

func (s *EntityStore) RemoveTargetAt(i int) bool {
	return s.Targets.RemoveAt(i)
}

func (s *EntityStore) RemoveProjectileAt(i int) bool {
	return s.Projectiles.RemoveAt(i)
}

// RemoveTargets removes a batch of target indices exactly once each
func (s *EntityStore) RemoveTargets(indices []int) int {
	return s.Targets.RemoveIndices(indices)
}

// RemoveProjectiles removes a batch of projectile indices exactly once each
func (s *EntityStore) RemoveProjectiles(indices []int) int {
	return s.Projectiles.RemoveIndices(indices)
}

// ExpireProjectiles removes projectiles matching pred
func (s *EntityStore) ExpireProjectiles(pred func(component.Projectile) bool) int {
	return s.Projectiles.RemoveFunc(pred)
}

// Reset drops every entity
func (s *EntityStore) Reset() {
	s.Targets.Clear()
	s.Projectiles.Clear()
}
