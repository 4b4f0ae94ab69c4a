package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Frontend is the input, renderer and lifecycle boundary of the loop
type Frontend interface {
	// Poll samples input state and camera matrices for the next frame
	Poll() FrameInput
	// Render presents the frame's draw calls
	Render(calls []DrawCall, report FrameReport)
	// ShouldExit is checked once at the end of every frame
	ShouldExit() bool
}

// Loop drives a simulation and a frontend until the frontend asks to exit
type Loop struct {
	sim      *Simulation
	frontend Frontend
	interval time.Duration
	hook     func(FrameReport)
	logger   *zap.Logger
}

// NewLoop creates a loop paced at interval; zero or negative runs unpaced
func NewLoop(sim *Simulation, frontend Frontend, interval time.Duration, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		sim:      sim,
		frontend: frontend,
		interval: interval,
		logger:   logger,
	}
}

// SetFrameHook registers a callback run after each rendered frame
func (l *Loop) SetFrameHook(fn func(FrameReport)) {
	l.hook = fn
}

// RunFrame executes exactly one poll, step, render cycle
func (l *Loop) RunFrame() FrameReport {
	in := l.frontend.Poll()
	report := l.sim.Step(in)
	calls := l.sim.DrawList(in.View, in.Projection)
	l.frontend.Render(calls, report)
	if l.hook != nil {
		l.hook(report)
	}
	return report
}

// Run loops until the frontend exits or ctx is cancelled
// Exit conditions are only checked between frames, a started frame always completes
func (l *Loop) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if l.interval > 0 {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	l.logger.Info("frame loop started", zap.Duration("interval", l.interval))
	for {
		l.RunFrame()

		if l.frontend.ShouldExit() {
			l.logger.Info("frame loop exit requested", zap.Uint64("frames", l.sim.Frame()))
			return nil
		}

		if tick == nil {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
}
