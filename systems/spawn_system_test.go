package systems

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/ufo-shooter/vmath"
)

// TestSpawnWaitsForCooldown verifies the first spawn needs the full cooldown from start
func TestSpawnWaitsForCooldown(t *testing.T) {
	s := NewSpawnScheduler(DefaultSpawnConfig(), vmath.NewFastRand(1), 0)

	if _, ok := s.TrySpawn(1.0); ok {
		t.Error("Spawned before cooldown elapsed")
	}
	// Strict comparison: exactly the cooldown is not enough
	if _, ok := s.TrySpawn(3.0); ok {
		t.Error("Spawned at exactly the cooldown")
	}
	if _, ok := s.TrySpawn(3.01); !ok {
		t.Error("Expected spawn after cooldown")
	}
	if s.Live() != 1 {
		t.Errorf("Expected live=1, got %d", s.Live())
	}
}

// TestSpawnCap verifies live count never exceeds the cap for any call sequence
func TestSpawnCap(t *testing.T) {
	cfg := DefaultSpawnConfig()
	s := NewSpawnScheduler(cfg, rand.New(rand.NewSource(5)), 0)
	rng := rand.New(rand.NewSource(9))

	now := 0.0
	for i := 0; i < 2000; i++ {
		now += rng.Float64() * 4
		s.TrySpawn(now)
		// Occasionally kill a few to exercise refill
		if rng.Intn(10) == 0 {
			s.Release(rng.Intn(3))
		}
		if s.Live() > cfg.MaxLive {
			t.Fatalf("Live count %d exceeded cap %d at step %d", s.Live(), cfg.MaxLive, i)
		}
	}
}

// TestSpawnCapBlocksWithoutRelease verifies spawning stops at the cap until targets die
func TestSpawnCapBlocksWithoutRelease(t *testing.T) {
	cfg := DefaultSpawnConfig()
	s := NewSpawnScheduler(cfg, vmath.NewFastRand(2), 0)

	now := 0.0
	spawned := 0
	for i := 0; i < 50; i++ {
		now += 3.5
		if _, ok := s.TrySpawn(now); ok {
			spawned++
		}
	}
	if spawned != cfg.MaxLive {
		t.Errorf("Expected %d spawns at cap, got %d", cfg.MaxLive, spawned)
	}

	s.Release(1)
	if _, ok := s.TrySpawn(now + 3.5); !ok {
		t.Error("Expected spawn after a release")
	}
}

// TestSpawnCooldownBetweenAccepted verifies accepted spawns are always more than cooldown apart
func TestSpawnCooldownBetweenAccepted(t *testing.T) {
	cfg := DefaultSpawnConfig()
	s := NewSpawnScheduler(cfg, vmath.NewFastRand(3), 0)
	rng := rand.New(rand.NewSource(11))

	now := 0.0
	last := -1.0
	for i := 0; i < 5000; i++ {
		now += rng.Float64() * 0.2
		if target, ok := s.TrySpawn(now); ok {
			if last >= 0 && target.SpawnedAt-last <= cfg.Cooldown {
				t.Fatalf("Spawns %.3f and %.3f closer than cooldown", last, target.SpawnedAt)
			}
			last = target.SpawnedAt
			s.Release(1)
		}
	}
	if last < 0 {
		t.Fatal("No spawn accepted")
	}
}

// TestSpawnDrawsSevenValues verifies draw count, order and ranges
func TestSpawnDrawsSevenValues(t *testing.T) {
	rng := &scriptedRand{values: []float32{0, 0.5, 0.75, 0.1, 0.2, 0.3, 0.5}}
	s := NewSpawnScheduler(DefaultSpawnConfig(), rng, 0)

	target, ok := s.TrySpawn(10)
	if !ok {
		t.Fatal("Expected spawn")
	}
	if rng.draws != 7 {
		t.Errorf("Expected 7 random draws, got %d", rng.draws)
	}

	// position = u*2R - R with R=15
	if target.Position.X() != -15 || target.Position.Y() != 0 || target.Position.Z() != 7.5 {
		t.Errorf("Unexpected position %v", target.Position)
	}
	if target.RotationAxis.X() != 0.1 || target.RotationAxis.Y() != 0.2 || target.RotationAxis.Z() != 0.3 {
		t.Errorf("Axis must be the raw draws, got %v", target.RotationAxis)
	}
	if target.RotationPhase != 180 {
		t.Errorf("Expected phase 180, got %v", target.RotationPhase)
	}
	if target.SpawnedAt != 10 {
		t.Errorf("Expected spawn time 10, got %v", target.SpawnedAt)
	}
	// Cooldown restarts from the accepted spawn
	if s.CanSpawn(12.9) || !s.CanSpawn(13.1) {
		t.Error("Cooldown did not restart at the spawn time")
	}
}

// TestSpawnRejectedConsumesNothing verifies a closed gate leaves state and randomness untouched
func TestSpawnRejectedConsumesNothing(t *testing.T) {
	rng := &scriptedRand{values: []float32{0.5}}
	s := NewSpawnScheduler(DefaultSpawnConfig(), rng, 100)

	if _, ok := s.TrySpawn(101); ok {
		t.Fatal("Unexpected spawn")
	}
	if rng.draws != 0 || s.Live() != 0 {
		t.Errorf("Rejected spawn changed state: draws=%d live=%d", rng.draws, s.Live())
	}
	// The cooldown still counts from 100, not from the rejected call
	if !s.CanSpawn(103.1) {
		t.Error("Rejected spawn moved the cooldown origin")
	}
}

// TestSpawnWithinVolume verifies positions stay inside the cube and phase in range
func TestSpawnWithinVolume(t *testing.T) {
	cfg := DefaultSpawnConfig()
	cfg.MaxLive = 1 << 20
	s := NewSpawnScheduler(cfg, vmath.NewFastRand(77), 0)

	now := 0.0
	for i := 0; i < 1000; i++ {
		now += cfg.Cooldown + 0.01
		target, ok := s.TrySpawn(now)
		if !ok {
			t.Fatalf("Spawn %d rejected", i)
		}
		for axis := 0; axis < 3; axis++ {
			if p := target.Position[axis]; p < -cfg.Radius || p > cfg.Radius {
				t.Fatalf("Position %v outside cube", target.Position)
			}
			if a := target.RotationAxis[axis]; a < 0 || a > 1 {
				t.Fatalf("Axis %v outside unit range", target.RotationAxis)
			}
		}
		if target.RotationPhase < 0 || target.RotationPhase >= 360 {
			t.Fatalf("Phase %v outside [0,360)", target.RotationPhase)
		}
	}
}

func TestSpawnReleaseFloor(t *testing.T) {
	s := NewSpawnScheduler(DefaultSpawnConfig(), vmath.NewFastRand(1), 0)
	s.Release(5)
	if s.Live() != 0 {
		t.Errorf("Release below zero, got %d", s.Live())
	}
}
