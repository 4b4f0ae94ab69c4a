// Package session wires configuration, logging, assets, audio and the
// simulation into one runnable game shared by both frontends
package session

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ufo-shooter/asset"
	"github.com/lixenwraith/ufo-shooter/audio"
	"github.com/lixenwraith/ufo-shooter/camera"
	"github.com/lixenwraith/ufo-shooter/config"
	"github.com/lixenwraith/ufo-shooter/engine"
	"github.com/lixenwraith/ufo-shooter/logger"
	"github.com/lixenwraith/ufo-shooter/vmath"
)

// Options are the command-line overrides applied over the config file
type Options struct {
	ConfigPath string // Empty uses defaults
	LogPath    string // Overrides log.file when set
	LogLevel   string // Overrides log.level when set
	Seed       uint64 // Overrides spawn.seed when non-zero
	Mute       bool
	NoAudio    bool                // Skip opening the audio device
	Time       engine.TimeProvider // Nil uses the monotonic clock
}

// Session owns every long-lived game object
type Session struct {
	Config config.Config
	Log    *logger.Logger
	Models *asset.Models
	Clock  *engine.Clock
	Sim    *engine.Simulation
	Camera *camera.Camera
	Sound  *audio.SoundManager
	Seed   uint64
}

// Open builds a session for a viewport of the given aspect ratio
func Open(opts Options, aspect float32) (*Session, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return nil, err
		}
	}
	if opts.LogPath != "" {
		cfg.Log.File = opts.LogPath
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	log, err := logger.New(cfg.LoggerConfig())
	if err != nil {
		return nil, err
	}

	models, err := asset.LoadModels()
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("load models: %w", err)
	}

	seed := cfg.Spawn.Seed
	if opts.Seed != 0 {
		seed = opts.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	provider := opts.Time
	if provider == nil {
		provider = engine.NewMonotonicTimeProvider()
	}
	clock := engine.NewClock(provider)

	s := &Session{
		Config: cfg,
		Log:    log,
		Models: models,
		Clock:  clock,
		Sim: engine.NewSimulation(clock, vmath.NewFastRand(seed), cfg.Tuning(),
			engine.AssetsFrom(models), log.Named("sim")),
		Camera: camera.New(cfg.CameraSettings(), aspect),
		Sound:  audio.NewSoundManager(cfg.Audio.Volume, log.Named("audio")),
		Seed:   seed,
	}

	if cfg.Audio.Enabled && !opts.NoAudio {
		if err := s.Sound.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		}
	}
	s.Sound.SetMuted(opts.Mute)

	log.Info("session started",
		zap.Uint64("seed", seed),
		zap.Int("max_live", cfg.Spawn.MaxLive),
		zap.Duration("frame_interval", cfg.FrameInterval()))
	return s, nil
}

// OnFrame plays the audio cues for one frame's events
func (s *Session) OnFrame(report engine.FrameReport) {
	if report.Fired != nil {
		s.Sound.PlayFire()
	}
	if report.TargetsDestroyed > 0 {
		s.Sound.PlayHit()
	}
	if report.Spawned != nil {
		s.Sound.PlaySpawn()
	}
}

// ToggleMute flips the mute state and returns the new state
func (s *Session) ToggleMute() bool {
	muted := !s.Sound.Muted()
	s.Sound.SetMuted(muted)
	s.Log.Info("mute toggled", zap.Bool("muted", muted))
	return muted
}

// Status is the frontend HUD suffix
func (s *Session) Status() string {
	if s.Sound.Muted() {
		return "[MUTED]"
	}
	return ""
}

// Close releases audio, assets and the log sink
func (s *Session) Close() error {
	s.Log.Info("session closed", zap.Uint64("frames", s.Sim.Frame()))
	s.Sound.Cleanup()
	return errors.Join(s.Models.Close(), s.Log.Close())
}
