package systems

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/ufo-shooter/component"
	"github.com/lixenwraith/ufo-shooter/constants"
)

// RandomSource yields uniform values in [0,1)
// Satisfied by *vmath.FastRand and *math/rand.Rand
type RandomSource interface {
	Float32() float32
}

// SpawnConfig bounds the enemy population and pacing
type SpawnConfig struct {
	MaxLive  int
	Cooldown float64 // Seconds
	Radius   float32 // Half-extent of the spawn cube
}

// DefaultSpawnConfig returns the stock population rules
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		MaxLive:  constants.EnemyMax,
		Cooldown: constants.RespawnInterval.Seconds(),
		Radius:   constants.EnemySpawnRadius,
	}
}

// SpawnScheduler is a rate-limited gate on target creation
// A spawn happens at the first check after the cooldown elapses while below
// the cap; it is not periodic
type SpawnScheduler struct {
	cfg       SpawnConfig
	rng       RandomSource
	lastSpawn float64
	live      int
}

// NewSpawnScheduler starts the cooldown at start, the clock reading at game start
func NewSpawnScheduler(cfg SpawnConfig, rng RandomSource, start float64) *SpawnScheduler {
	return &SpawnScheduler{
		cfg:       cfg,
		rng:       rng,
		lastSpawn: start,
	}
}

// CanSpawn reports whether TrySpawn at now would succeed
func (s *SpawnScheduler) CanSpawn(now float64) bool {
	return s.live < s.cfg.MaxLive && now-s.lastSpawn > s.cfg.Cooldown
}

// TrySpawn creates a target when the gate is open
// On failure no state changes and no random values are consumed
func (s *SpawnScheduler) TrySpawn(now float64) (component.Target, bool) {
	if !s.CanSpawn(now) {
		return component.Target{}, false
	}

	r := s.cfg.Radius
	// Draw order is part of the contract: position xyz, axis xyz, phase
	px := s.rng.Float32()*2*r - r
	py := s.rng.Float32()*2*r - r
	pz := s.rng.Float32()*2*r - r
	ax := s.rng.Float32()
	ay := s.rng.Float32()
	az := s.rng.Float32()
	phase := s.rng.Float32() * constants.EnemyPhaseRange

	s.lastSpawn = now
	s.live++

	return component.Target{
		Position:      mgl32.Vec3{px, py, pz},
		RotationAxis:  mgl32.Vec3{ax, ay, az},
		RotationPhase: phase,
		SpawnedAt:     now,
	}, true
}

// Release accounts for n destroyed targets
func (s *SpawnScheduler) Release(n int) {
	s.live -= n
	if s.live < 0 {
		s.live = 0
	}
}

// Live returns the number of targets the scheduler believes alive
func (s *SpawnScheduler) Live() int {
	return s.live
}
