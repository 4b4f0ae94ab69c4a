package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/ufo-shooter/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// Cue identifies a gameplay sound
type Cue int

const (
	CueFire Cue = iota
	CueHit
	CueSpawn
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueHit:
		return "hit"
	case CueSpawn:
		return "spawn"
	default:
		return fmt.Sprintf("cue(%d)", int(c))
	}
}

// SoundManager plays short cues through a shared mixer
// Every method is a no-op until Initialize succeeds, so the game runs without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	logger      *zap.Logger
}

// NewSoundManager creates a new sound manager
func NewSoundManager(volume float64, logger *zap.Logger) *SoundManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences future cues without releasing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted returns the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play mixes in one cue
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s, err := NewCue(c, sampleRate, sm.volume)
	if err != nil {
		sm.logger.Warn("audio cue failed", zap.Stringer("cue", c), zap.Error(err))
		return
	}

	// The mixer is streamed from the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayFire plays the falling laser chirp
func (sm *SoundManager) PlayFire() { sm.Play(CueFire) }

// PlayHit plays the destruction ping
func (sm *SoundManager) PlayHit() { sm.Play(CueHit) }

// PlaySpawn plays the low arrival tone
func (sm *SoundManager) PlaySpawn() { sm.Play(CueSpawn) }

// NewCue builds the finite streamer for c at the given linear volume
func NewCue(c Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	var s beep.Streamer
	switch c {
	case CueFire:
		osc := NewSweep(constants.FireSoundStartFreq, constants.FireSoundEndFreq, constants.FireSoundDuration, WaveSquare, rate)
		s = NewDecay(osc, constants.FireSoundDuration, 0, rate)
	case CueHit:
		osc := NewOscillator(constants.HitSoundFreq, constants.HitSoundDuration, WaveSaw, rate)
		s = NewDecay(osc, constants.HitSoundDuration, 0, rate)
	case CueSpawn:
		sine, err := generators.SineTone(rate, constants.SpawnSoundFreq)
		if err != nil {
			return nil, err
		}
		s = NewDecay(beep.Take(rate.N(constants.SpawnSoundDuration), sine), constants.SpawnSoundDuration, constants.SpawnSoundDuration/4, rate)
	default:
		return nil, fmt.Errorf("unknown cue %d", int(c))
	}
	return newVolume(s, volume), nil
}
