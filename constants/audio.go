package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the linear gain applied to every cue
	AudioDefaultVolume = 0.3
)

// Fire Sound Timing
const (
	FireSoundDuration  = 70 * time.Millisecond
	FireSoundStartFreq = 1400.0
	FireSoundEndFreq   = 400.0
)

// Hit Sound Timing
const (
	HitSoundDuration = 180 * time.Millisecond
	HitSoundFreq     = 880.0
)

// Spawn Sound Timing
const (
	SpawnSoundDuration = 120 * time.Millisecond
	SpawnSoundFreq     = 220.0
)
