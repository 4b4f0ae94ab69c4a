package systems

import (
	"testing"

	"github.com/lixenwraith/ufo-shooter/component"
)

// TestCollisionExactOnce verifies one target hit by two projectiles is removed once
func TestCollisionExactOnce(t *testing.T) {
	store := &sliceStore{
		targets:     []component.Target{targetAt(0, 0, 0)},
		projectiles: []component.Projectile{bulletAt(1, 0, 0), bulletAt(0, -2, 0)},
	}
	scheduler := NewSpawnScheduler(DefaultSpawnConfig(), &scriptedRand{values: []float32{0.5}}, 0)
	scheduler.TrySpawn(10)

	res := NewCollisionResolver(3).Resolve(store)
	scheduler.Release(res.TargetsRemoved)

	if len(res.Hits) != 2 {
		t.Errorf("Expected 2 contact pairs, got %d", len(res.Hits))
	}
	if res.TargetsRemoved != 1 {
		t.Errorf("Target removed %d times, want 1", res.TargetsRemoved)
	}
	if len(store.targets) != 0 {
		t.Errorf("Expected no targets left, got %d", len(store.targets))
	}
	if res.ProjectilesRemoved != 2 || len(store.projectiles) != 0 {
		t.Errorf("Expected both matched projectiles consumed, removed=%d left=%d",
			res.ProjectilesRemoved, len(store.projectiles))
	}
	if scheduler.Live() != 0 {
		t.Errorf("Live count should drop by exactly 1, got %d", scheduler.Live())
	}
	if len(res.Destroyed) != 1 || res.Destroyed[0].Position.Len() != 0 {
		t.Errorf("Destroyed list wrong: %+v", res.Destroyed)
	}
}

// TestCollisionNoFalsePositive verifies distant pairs survive
func TestCollisionNoFalsePositive(t *testing.T) {
	store := &sliceStore{
		targets:     []component.Target{targetAt(0, 0, 0)},
		projectiles: []component.Projectile{bulletAt(10, 0, 0)},
	}

	res := NewCollisionResolver(3).Resolve(store)

	if len(res.Hits) != 0 || res.TargetsRemoved != 0 || res.ProjectilesRemoved != 0 {
		t.Errorf("Unexpected collision %+v", res)
	}
	if len(store.targets) != 1 || len(store.projectiles) != 1 {
		t.Errorf("Entities removed without contact: %d targets, %d projectiles",
			len(store.targets), len(store.projectiles))
	}
}

// TestCollisionProjectileHitsTwoTargets verifies one projectile can take out every target it overlaps
func TestCollisionProjectileHitsTwoTargets(t *testing.T) {
	store := &sliceStore{
		targets:     []component.Target{targetAt(-1, 0, 0), targetAt(20, 0, 0), targetAt(1, 0, 0)},
		projectiles: []component.Projectile{bulletAt(0, 0, 0)},
	}

	res := NewCollisionResolver(3).Resolve(store)

	if res.TargetsRemoved != 2 || res.ProjectilesRemoved != 1 {
		t.Errorf("Expected 2 targets and 1 projectile removed, got %d/%d",
			res.TargetsRemoved, res.ProjectilesRemoved)
	}
	if len(store.targets) != 1 || store.targets[0].Position.X() != 20 {
		t.Errorf("Wrong survivor: %+v", store.targets)
	}
	if len(res.Destroyed) != 2 || res.Destroyed[0].Position.X() != -1 || res.Destroyed[1].Position.X() != 1 {
		t.Errorf("Destroyed must list removed targets in spawn order: %+v", res.Destroyed)
	}
}

// TestCollisionShiftedIndices verifies removals across many pairs never skip or misremove
func TestCollisionShiftedIndices(t *testing.T) {
	// Alternating hit/miss layout: a single-pass erase would shift survivors into checked slots
	store := &sliceStore{}
	for i := 0; i < 6; i++ {
		store.targets = append(store.targets, targetAt(float32(i*10), 0, 0))
	}
	// Bullets on targets 0, 1, 3 and 5; two on target 3
	for _, x := range []float32{0, 10, 30, 31, 50, 100} {
		store.projectiles = append(store.projectiles, bulletAt(x, 0, 0))
	}

	res := NewCollisionResolver(3).Resolve(store)

	if res.TargetsRemoved != 4 {
		t.Errorf("Expected 4 targets removed, got %d", res.TargetsRemoved)
	}
	if res.ProjectilesRemoved != 5 {
		t.Errorf("Expected 5 projectiles removed, got %d", res.ProjectilesRemoved)
	}
	if len(store.targets) != 2 || store.targets[0].Position.X() != 20 || store.targets[1].Position.X() != 40 {
		t.Errorf("Unexpected surviving targets %+v", store.targets)
	}
	if len(store.projectiles) != 1 || store.projectiles[0].Position.X() != 100 {
		t.Errorf("Unexpected surviving projectiles %+v", store.projectiles)
	}
}

// TestCollisionDetectOrder verifies pairs are target-major
func TestCollisionDetectOrder(t *testing.T) {
	targets := []component.Target{targetAt(0, 0, 0), targetAt(0, 0, 1)}
	projectiles := []component.Projectile{bulletAt(0, 0, 0.5), bulletAt(0, 0, 0.6)}

	hits := NewCollisionResolver(3).Detect(targets, projectiles)

	expected := []Hit{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if len(hits) != len(expected) {
		t.Fatalf("Expected %d hits, got %d", len(expected), len(hits))
	}
	for i := range expected {
		if hits[i] != expected[i] {
			t.Errorf("Hit %d = %+v, want %+v", i, hits[i], expected[i])
		}
	}
}

func TestCollisionEmpty(t *testing.T) {
	r := NewCollisionResolver(3)

	if res := r.Resolve(&sliceStore{targets: []component.Target{targetAt(0, 0, 0)}}); res.TargetsRemoved != 0 {
		t.Errorf("No projectiles must remove nothing, got %+v", res)
	}
	if res := r.Resolve(&sliceStore{projectiles: []component.Projectile{bulletAt(0, 0, 0)}}); res.ProjectilesRemoved != 0 {
		t.Errorf("No targets must remove nothing, got %+v", res)
	}
	if r.Radius() != 3 {
		t.Errorf("Radius = %v", r.Radius())
	}
}

// TestCollisionResolverReuse verifies scratch buffers do not leak between frames
func TestCollisionResolverReuse(t *testing.T) {
	r := NewCollisionResolver(3)

	first := &sliceStore{
		targets:     []component.Target{targetAt(0, 0, 0), targetAt(10, 0, 0), targetAt(20, 0, 0)},
		projectiles: []component.Projectile{bulletAt(20, 0, 0)},
	}
	if res := r.Resolve(first); res.TargetsRemoved != 1 {
		t.Fatalf("First frame removed %d", res.TargetsRemoved)
	}

	second := &sliceStore{
		targets:     []component.Target{targetAt(0, 0, 0)},
		projectiles: []component.Projectile{bulletAt(0, 1, 0)},
	}
	res := r.Resolve(second)
	if res.TargetsRemoved != 1 || len(res.Destroyed) != 1 || res.Destroyed[0].Position.X() != 0 {
		t.Errorf("Second frame polluted by first: %+v", res)
	}
}
