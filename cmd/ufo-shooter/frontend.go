package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/ufo-shooter/engine"
	"github.com/lixenwraith/ufo-shooter/input"
	"github.com/lixenwraith/ufo-shooter/render"
	"github.com/lixenwraith/ufo-shooter/session"
)

// Approximate pixel size of one cell, scales drag distance to mouse sensitivity
const (
	cellPixelsX = 8
	cellPixelsY = 16
)

// terminalFrontend adapts a tcell screen to the frame loop
type terminalFrontend struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	session  *session.Session
	input    *input.State
	events   <-chan tcell.Event

	lastDelta float32 // Previous frame's simulation delta, zero while paused
	quit      bool
}

func newTerminalFrontend(screen tcell.Screen, s *session.Session, events <-chan tcell.Event, holdFrames int) *terminalFrontend {
	f := &terminalFrontend{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, s.Models),
		session:  s,
		input:    input.NewState(input.DefaultKeyTable(), holdFrames),
		events:   events,
	}
	f.syncAspect()
	f.renderer.SetStatus(s.Status())
	return f
}

func (f *terminalFrontend) syncAspect() {
	vp := f.renderer.Viewport(f.session.Camera.Projection())
	f.session.Camera.SetAspect(vp.Aspect())
}

// Poll drains pending terminal events without blocking
func (f *terminalFrontend) Poll() engine.FrameInput {
drain:
	for {
		select {
		case ev, ok := <-f.events:
			if !ok {
				f.quit = true
				break drain
			}
			f.handle(ev)
		default:
			break drain
		}
	}

	snap := f.input.Frame(cellPixelsX, cellPixelsY)
	if snap.ToggleMute {
		f.session.ToggleMute()
		f.renderer.SetStatus(f.session.Status())
	}
	if snap.Quit {
		f.quit = true
	}

	cam := f.session.Camera
	cam.Update(snap.Controls, f.lastDelta)
	return engine.FrameInput{
		FirePressed: snap.FirePressed,
		TogglePause: snap.TogglePause,
		CameraPos:   cam.Position(),
		CameraDir:   cam.Direction(),
		View:        cam.View(),
		Projection:  cam.Projection(),
	}
}

func (f *terminalFrontend) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		f.screen.Sync()
		f.renderer.Resize(w, h)
		f.syncAspect()
	case nil:
		// PollEvent returns nil once the screen is finalized
		f.quit = true
	default:
		f.input.HandleEvent(ev)
	}
}

// Render draws the frame with the projection the camera produced in Poll
func (f *terminalFrontend) Render(calls []engine.DrawCall, report engine.FrameReport) {
	f.lastDelta = float32(report.Delta)
	f.renderer.RenderFrame(calls, report, f.projection())
}

func (f *terminalFrontend) projection() mgl32.Mat4 {
	return f.session.Camera.Projection()
}

func (f *terminalFrontend) ShouldExit() bool {
	return f.quit
}
