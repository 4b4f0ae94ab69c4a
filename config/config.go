package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ufo-shooter/camera"
	"github.com/lixenwraith/ufo-shooter/constants"
	"github.com/lixenwraith/ufo-shooter/engine"
	"github.com/lixenwraith/ufo-shooter/logger"
	"github.com/lixenwraith/ufo-shooter/systems"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the tuning file layout; absent keys keep their defaults
type Config struct {
	Spawn      SpawnConfig      `yaml:"spawn"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Collision  CollisionConfig  `yaml:"collision"`
	Camera     CameraConfig     `yaml:"camera"`
	Audio      AudioConfig      `yaml:"audio"`
	Log        LogConfig        `yaml:"log"`
	FrameRate  int              `yaml:"frame_rate"` // Frames per second
}

type SpawnConfig struct {
	MaxLive  int           `yaml:"max_live"`
	Cooldown time.Duration `yaml:"cooldown"`
	Radius   float32       `yaml:"radius"`
	Seed     uint64        `yaml:"seed"` // Zero seeds from the wall clock
}

type ProjectileConfig struct {
	Speed        float32       `yaml:"speed"`
	MuzzleOffset float32       `yaml:"muzzle_offset"`
	TTL          time.Duration `yaml:"ttl"` // Zero disables expiry
}

type CollisionConfig struct {
	ContactRadius float32 `yaml:"contact_radius"`
}

type CameraConfig struct {
	Position         [3]float32 `yaml:"position"`
	FOVDegrees       float32    `yaml:"fov_degrees"`
	MoveSpeed        float32    `yaml:"move_speed"`
	TurnSpeed        float32    `yaml:"turn_speed"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Linear gain in [0,1]
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Spawn: SpawnConfig{
			MaxLive:  constants.EnemyMax,
			Cooldown: constants.RespawnInterval,
			Radius:   constants.EnemySpawnRadius,
		},
		Projectile: ProjectileConfig{
			Speed:        constants.BulletSpeed,
			MuzzleOffset: constants.BulletMuzzleOffset,
			TTL:          constants.BulletTTL,
		},
		Collision: CollisionConfig{
			ContactRadius: constants.ContactRadius,
		},
		Camera: CameraConfig{
			Position:         [3]float32{constants.CameraStartX, constants.CameraStartY, constants.CameraStartZ},
			FOVDegrees:       constants.CameraFOVDegrees,
			MoveSpeed:        constants.CameraMoveSpeed,
			TurnSpeed:        constants.CameraTurnSpeed,
			MouseSensitivity: constants.CameraMouseSensitivity,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constants.AudioDefaultVolume,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		FrameRate: int(time.Second / constants.FrameUpdateInterval),
	}
}

// Load reads path over the defaults and validates the result
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, rejecting unknown keys
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range value
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, field, rule string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s %s", ErrInvalid, field, rule))
		}
	}

	check(c.Spawn.MaxLive > 0, "spawn.max_live", "must be positive")
	check(c.Spawn.Cooldown > 0, "spawn.cooldown", "must be positive")
	check(c.Spawn.Radius > 0, "spawn.radius", "must be positive")
	check(c.Projectile.Speed > 0, "projectile.speed", "must be positive")
	check(c.Projectile.MuzzleOffset >= 0, "projectile.muzzle_offset", "must not be negative")
	check(c.Projectile.TTL >= 0, "projectile.ttl", "must not be negative")
	check(c.Collision.ContactRadius > 0, "collision.contact_radius", "must be positive")
	check(c.Camera.FOVDegrees > 0 && c.Camera.FOVDegrees < 180, "camera.fov_degrees", "must be in (0,180)")
	check(c.Camera.MoveSpeed >= 0, "camera.move_speed", "must not be negative")
	check(c.Camera.TurnSpeed >= 0, "camera.turn_speed", "must not be negative")
	check(c.Camera.MouseSensitivity >= 0, "camera.mouse_sensitivity", "must not be negative")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume", "must be in [0,1]")
	check(c.Log.Format == "json" || c.Log.Format == "console", "log.format", "must be json or console")
	check(c.FrameRate > 0 && c.FrameRate <= 1000, "frame_rate", "must be in (0,1000]")

	return errors.Join(errs...)
}

// FrameInterval is the loop pacing derived from FrameRate
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FrameRate)
}

// Tuning converts gameplay sections for the simulation
func (c Config) Tuning() engine.Tuning {
	return engine.Tuning{
		Spawn: systems.SpawnConfig{
			MaxLive:  c.Spawn.MaxLive,
			Cooldown: c.Spawn.Cooldown.Seconds(),
			Radius:   c.Spawn.Radius,
		},
		ProjectileSpeed: c.Projectile.Speed,
		MuzzleOffset:    c.Projectile.MuzzleOffset,
		ProjectileScale: constants.BulletModelScale,
		ProjectileTTL:   c.Projectile.TTL,
		ContactRadius:   c.Collision.ContactRadius,
	}
}

// CameraSettings converts the camera section, keeping non-configurable defaults
func (c Config) CameraSettings() camera.Settings {
	s := camera.DefaultSettings()
	s.Position = mgl32.Vec3(c.Camera.Position)
	s.FOVDegrees = c.Camera.FOVDegrees
	s.MoveSpeed = c.Camera.MoveSpeed
	s.TurnSpeed = c.Camera.TurnSpeed
	s.MouseSensitivity = c.Camera.MouseSensitivity
	return s
}

// LoggerConfig converts the log section
func (c Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:  c.Log.Level,
		Format: c.Log.Format,
		File:   c.Log.File,
	}
}
