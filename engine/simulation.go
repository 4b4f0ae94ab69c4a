package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/lixenwraith/ufo-shooter/component"
	"github.com/lixenwraith/ufo-shooter/constants"
	"github.com/lixenwraith/ufo-shooter/physics"
	"github.com/lixenwraith/ufo-shooter/systems"
)

// Tuning holds the gameplay parameters of a simulation
type Tuning struct {
	Spawn           systems.SpawnConfig
	ProjectileSpeed float32
	MuzzleOffset    float32
	ProjectileScale float32
	ProjectileTTL   time.Duration // Zero or negative keeps projectiles forever
	ContactRadius   float32
}

// DefaultTuning returns the stock gameplay parameters
func DefaultTuning() Tuning {
	return Tuning{
		Spawn:           systems.DefaultSpawnConfig(),
		ProjectileSpeed: constants.BulletSpeed,
		MuzzleOffset:    constants.BulletMuzzleOffset,
		ProjectileScale: constants.BulletModelScale,
		ProjectileTTL:   constants.BulletTTL,
		ContactRadius:   constants.ContactRadius,
	}
}

// FrameInput is everything the frontend samples once per frame
type FrameInput struct {
	FirePressed bool // Level state of the fire button
	TogglePause bool // Edge: flip pause this frame

	CameraPos  mgl32.Vec3
	CameraDir  mgl32.Vec3 // Unit forward vector
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// FrameReport describes what one Step did
type FrameReport struct {
	Frame uint64
	Now   float64 // Game seconds
	Delta float64 // Seconds since previous frame, never negative

	Spawned *component.Target     // Set when a target spawned this frame
	Fired   *component.Projectile // Set when a projectile was fired this frame

	Hits                int // Contact pairs detected
	TargetsDestroyed    int
	ProjectilesConsumed int // Removed by contact
	ProjectilesExpired  int // Removed by lifetime
	Destroyed           []component.Target

	LiveTargets     int
	LiveProjectiles int
	Paused          bool
}

// Simulation is the explicit per-run game state advanced once per frame
// Not safe for concurrent use; owned by the frame loop goroutine
type Simulation struct {
	clock     *Clock
	scheduler *systems.SpawnScheduler
	store     *EntityStore
	trigger   systems.FireTrigger
	resolver  *systems.CollisionResolver
	lifetime  *systems.LifetimeSystem
	logger    *zap.Logger

	tuning Tuning
	assets Assets

	lastTime float64
	frame    uint64
	calls    []DrawCall
}

// NewSimulation wires the core systems on clock
// A nil logger disables logging
func NewSimulation(clock *Clock, rng systems.RandomSource, tuning Tuning, assets Assets, logger *zap.Logger) *Simulation {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := clock.Now()
	return &Simulation{
		clock:     clock,
		scheduler: systems.NewSpawnScheduler(tuning.Spawn, rng, start),
		store:     NewEntityStore(tuning.Spawn.MaxLive, 64),
		resolver:  systems.NewCollisionResolver(tuning.ContactRadius),
		lifetime:  systems.NewLifetimeSystem(tuning.ProjectileTTL.Seconds()),
		logger:    logger,
		tuning:    tuning,
		assets:    assets,
		lastTime:  start,
		calls:     make([]DrawCall, 0, tuning.Spawn.MaxLive+64),
	}
}

// Step runs one frame: time, spawn, fire, motion, collision, lifetime
func (s *Simulation) Step(in FrameInput) FrameReport {
	s.frame++

	if in.TogglePause {
		paused := s.clock.Toggle()
		s.logger.Info("pause toggled",
			zap.Bool("paused", paused),
			zap.Uint64("frame", s.frame),
			zap.Duration("total_paused", s.clock.TotalPaused()),
		)
	}

	now := s.clock.Now()
	dt := Delta(s.lastTime, now)
	s.lastTime = now
	paused := s.clock.IsPaused()

	report := FrameReport{
		Frame:  s.frame,
		Now:    now,
		Delta:  dt,
		Paused: paused,
	}

	if !paused {
		if target, ok := s.scheduler.TrySpawn(now); ok {
			s.store.AddTarget(target)
			report.Spawned = &target
			s.logger.Debug("target spawned",
				zap.Uint64("frame", s.frame),
				zap.Float64("now", now),
				zap.Float32s("position", target.Position[:]),
				zap.Int("live", s.scheduler.Live()),
			)
		}
	}

	// The edge is consumed even while paused so a held button does not fire on resume
	if s.trigger.Update(in.FirePressed) && !paused {
		p := systems.NewProjectile(in.CameraPos, in.CameraDir, s.tuning.MuzzleOffset, now)
		s.store.AddProjectile(p)
		report.Fired = &p
		s.logger.Debug("projectile fired",
			zap.Uint64("frame", s.frame),
			zap.Float32s("position", p.Position[:]),
			zap.Float32s("direction", p.Direction[:]),
		)
	}

	physics.AdvanceProjectiles(s.store.Projectiles.All(), float32(dt), s.tuning.ProjectileSpeed)

	res := s.resolver.Resolve(s.store)
	s.scheduler.Release(res.TargetsRemoved)
	report.Hits = len(res.Hits)
	report.TargetsDestroyed = res.TargetsRemoved
	report.ProjectilesConsumed = res.ProjectilesRemoved
	report.Destroyed = res.Destroyed
	if res.TargetsRemoved > 0 {
		s.logger.Debug("targets destroyed",
			zap.Uint64("frame", s.frame),
			zap.Int("pairs", len(res.Hits)),
			zap.Int("targets", res.TargetsRemoved),
			zap.Int("projectiles", res.ProjectilesRemoved),
			zap.Int("live", s.scheduler.Live()),
		)
	}

	report.ProjectilesExpired = s.lifetime.Update(s.store, now)
	if report.ProjectilesExpired > 0 {
		s.logger.Debug("projectiles expired",
			zap.Uint64("frame", s.frame),
			zap.Int("count", report.ProjectilesExpired),
		)
	}

	report.LiveTargets = s.store.Targets.Len()
	report.LiveProjectiles = s.store.Projectiles.Len()
	if report.LiveTargets != s.scheduler.Live() {
		s.logger.Error("live counter drift",
			zap.Int("counter", s.scheduler.Live()),
			zap.Int("targets", report.LiveTargets),
		)
	}
	return report
}

// DrawList builds one draw call per target then per projectile, in store order
// The returned slice is reused by the next call
func (s *Simulation) DrawList(view, projection mgl32.Mat4) []DrawCall {
	s.calls = s.calls[:0]
	now := s.lastTime

	for _, t := range s.store.TargetsView() {
		model := physics.TargetTransform(t, now)
		s.calls = append(s.calls, DrawCall{
			Kind:    DrawTarget,
			Model:   model,
			MVP:     physics.MVP(projection, view, model),
			Mesh:    s.assets.TargetMesh,
			Texture: s.assets.TargetTexture,
		})
	}
	for _, p := range s.store.ProjectilesView() {
		model := physics.ProjectileTransform(p, s.tuning.ProjectileScale)
		s.calls = append(s.calls, DrawCall{
			Kind:    DrawProjectile,
			Model:   model,
			MVP:     physics.MVP(projection, view, model),
			Mesh:    s.assets.ProjectileMesh,
			Texture: s.assets.ProjectileTexture,
		})
	}
	return s.calls
}

// Store exposes entity storage for inspection
func (s *Simulation) Store() *EntityStore {
	return s.store
}

// Clock returns the game clock
func (s *Simulation) Clock() *Clock {
	return s.clock
}

// Scheduler returns the spawn scheduler
func (s *Simulation) Scheduler() *systems.SpawnScheduler {
	return s.scheduler
}

// Tuning returns the active gameplay parameters
func (s *Simulation) Tuning() Tuning {
	return s.tuning
}

// Frame returns the number of completed steps
func (s *Simulation) Frame() uint64 {
	return s.frame
}
