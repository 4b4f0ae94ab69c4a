package systems

import (
	"github.com/lixenwraith/ufo-shooter/component"
	"github.com/lixenwraith/ufo-shooter/physics"
)

// Hit is one target/projectile pair in contact during a frame
type Hit struct {
	TargetIndex     int
	ProjectileIndex int
}

// Resolution summarizes one collision pass
type Resolution struct {
	Hits               []Hit
	TargetsRemoved     int
	ProjectilesRemoved int
	Destroyed          []component.Target // Copies of removed targets, in spawn order
}

// PairStore is the entity storage the resolver mutates
type PairStore interface {
	TargetsView() []component.Target
	ProjectilesView() []component.Projectile
	RemoveTargets(indices []int) int
	RemoveProjectiles(indices []int) int
}

// CollisionResolver removes targets and projectiles in proximity contact
// Matches are collected for the whole frame before any removal so each
// entity is removed at most once regardless of how many pairs it is part of
type CollisionResolver struct {
	radius float32

	// Scratch buffers reused across frames
	hits       []Hit
	targetIdx  []int
	bulletIdx  []int
	targetSeen []bool
	bulletSeen []bool
}

// NewCollisionResolver creates a resolver with the given exclusive contact radius
func NewCollisionResolver(radius float32) *CollisionResolver {
	return &CollisionResolver{radius: radius}
}

// Radius returns the contact radius
func (r *CollisionResolver) Radius() float32 {
	return r.radius
}

// Detect returns every pair closer than the contact radius, target-major order
// The returned slice is reused by the next Detect or Resolve call
func (r *CollisionResolver) Detect(targets []component.Target, projectiles []component.Projectile) []Hit {
	r.hits = r.hits[:0]
	if len(targets) == 0 || len(projectiles) == 0 {
		return r.hits
	}

	for ti := range targets {
		for pi := range projectiles {
			if physics.InContact(targets[ti].Position, projectiles[pi].Position, r.radius) {
				r.hits = append(r.hits, Hit{TargetIndex: ti, ProjectileIndex: pi})
			}
		}
	}
	return r.hits
}

// Resolve detects contacts and removes every matched entity exactly once
func (r *CollisionResolver) Resolve(store PairStore) Resolution {
	targets := store.TargetsView()
	hits := r.Detect(targets, store.ProjectilesView())
	if len(hits) == 0 {
		return Resolution{}
	}

	r.targetIdx = r.targetIdx[:0]
	r.bulletIdx = r.bulletIdx[:0]
	r.targetSeen = resetMarks(r.targetSeen, len(targets))
	r.bulletSeen = resetMarks(r.bulletSeen, len(store.ProjectilesView()))

	for _, h := range hits {
		if !r.targetSeen[h.TargetIndex] {
			r.targetSeen[h.TargetIndex] = true
			r.targetIdx = append(r.targetIdx, h.TargetIndex)
		}
		if !r.bulletSeen[h.ProjectileIndex] {
			r.bulletSeen[h.ProjectileIndex] = true
			r.bulletIdx = append(r.bulletIdx, h.ProjectileIndex)
		}
	}

	// Copy destroyed targets before compaction overwrites them
	destroyed := make([]component.Target, 0, len(r.targetIdx))
	for i, seen := range r.targetSeen {
		if seen {
			destroyed = append(destroyed, targets[i])
		}
	}

	res := Resolution{
		Hits:      append([]Hit(nil), hits...),
		Destroyed: destroyed,
	}
	res.TargetsRemoved = store.RemoveTargets(r.targetIdx)
	res.ProjectilesRemoved = store.RemoveProjectiles(r.bulletIdx)
	return res
}

func resetMarks(marks []bool, n int) []bool {
	if cap(marks) < n {
		return make([]bool, n)
	}
	marks = marks[:n]
	for i := range marks {
		marks[i] = false
	}
	return marks
}
