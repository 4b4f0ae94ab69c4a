package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame loop pacing interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// WindowTPS is the ebiten tick rate for the window frontend
	WindowTPS = 60

	// EventChannelSize is the buffer of the terminal event poller
	EventChannelSize = 256
)
