package systems

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/ufo-shooter/component"
)

// scriptedRand replays fixed values and counts draws
type scriptedRand struct {
	values []float32
	draws  int
}

func (r *scriptedRand) Float32() float32 {
	v := r.values[r.draws%len(r.values)]
	r.draws++
	return v
}

// sliceStore is a minimal PairStore over plain slices
type sliceStore struct {
	targets     []component.Target
	projectiles []component.Projectile
}

func (s *sliceStore) TargetsView() []component.Target         { return s.targets }
func (s *sliceStore) ProjectilesView() []component.Projectile { return s.projectiles }

func (s *sliceStore) RemoveTargets(indices []int) int {
	var n int
	s.targets, n = compact(s.targets, indices)
	return n
}

func (s *sliceStore) RemoveProjectiles(indices []int) int {
	var n int
	s.projectiles, n = compact(s.projectiles, indices)
	return n
}

func (s *sliceStore) ExpireProjectiles(pred func(component.Projectile) bool) int {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if !pred(p) {
			kept = append(kept, p)
		}
	}
	removed := len(s.projectiles) - len(kept)
	s.projectiles = kept
	return removed
}

func compact[T any](items []T, indices []int) ([]T, int) {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(items) {
			drop[i] = true
		}
	}
	kept := make([]T, 0, len(items))
	for i, v := range items {
		if !drop[i] {
			kept = append(kept, v)
		}
	}
	return kept, len(drop)
}

func targetAt(x, y, z float32) component.Target {
	return component.Target{Position: mgl32.Vec3{x, y, z}, RotationAxis: mgl32.Vec3{0, 1, 0}}
}

func bulletAt(x, y, z float32) component.Projectile {
	return component.Projectile{Position: mgl32.Vec3{x, y, z}, Direction: mgl32.Vec3{0, 0, -1}}
}
