package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/ufo-shooter/camera"
	"github.com/lixenwraith/ufo-shooter/constants"
	"github.com/lixenwraith/ufo-shooter/engine"
	"github.com/lixenwraith/ufo-shooter/render/window"
	"github.com/lixenwraith/ufo-shooter/session"
)

// windowInput is one tick of raw device state
type windowInput struct {
	controls    camera.Controls
	firePressed bool
	pause, mute bool
	quit        bool
	cursorX     int
	cursorY     int
	looking     bool // Right button held
}

// readInput samples ebiten's keyboard and mouse state
func readInput() windowInput {
	var in windowInput
	c := &in.controls
	c.Forward = ebiten.IsKeyPressed(ebiten.KeyW)
	c.Back = ebiten.IsKeyPressed(ebiten.KeyS)
	c.Left = ebiten.IsKeyPressed(ebiten.KeyA)
	c.Right = ebiten.IsKeyPressed(ebiten.KeyD)
	c.Rise = ebiten.IsKeyPressed(ebiten.KeyR)
	c.Sink = ebiten.IsKeyPressed(ebiten.KeyF)
	c.TurnLeft = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	c.TurnRight = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	c.LookUp = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	c.LookDown = ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	in.firePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)
	in.pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.mute = inpututil.IsKeyJustPressed(ebiten.KeyM)
	in.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
	in.cursorX, in.cursorY = ebiten.CursorPosition()
	in.looking = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	return in
}

// Game implements ebiten.Game and engine.Frontend
// ebiten owns the tick, so each Update runs exactly one loop frame
type Game struct {
	session  *session.Session
	renderer *window.Renderer
	loop     *engine.Loop
	read     func() windowInput

	lastDelta    float32
	lastX, lastY int
	wasLooking   bool
	quit         bool
}

// NewGame creates a game bound to an open session
func NewGame(s *session.Session) *Game {
	g := &Game{
		session:  s,
		renderer: window.NewRenderer(s.Models, constants.WindowWidth, constants.WindowHeight),
		read:     readInput,
	}
	g.loop = engine.NewLoop(s.Sim, g, 0, s.Log.Named("loop"))
	g.loop.SetFrameHook(s.OnFrame)
	g.syncAspect()
	g.renderer.SetStatus(s.Status())
	return g
}

func (g *Game) syncAspect() {
	vp := g.renderer.Viewport(g.session.Camera.Projection())
	g.session.Camera.SetAspect(vp.Aspect())
}

// Update advances the simulation by one frame
func (g *Game) Update() error {
	g.loop.RunFrame()
	if g.ShouldExit() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the frame prepared by the last Update
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

// Layout keeps a 1:1 logical pixel surface and follows window resizes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := g.renderer.Size(); w != outsideWidth || h != outsideHeight {
		g.renderer.Resize(outsideWidth, outsideHeight)
		g.syncAspect()
	}
	return outsideWidth, outsideHeight
}

// Poll converts the current device state into frame input
func (g *Game) Poll() engine.FrameInput {
	in := g.read()

	if in.looking && g.wasLooking {
		in.controls.MouseDX = float32(in.cursorX - g.lastX)
		in.controls.MouseDY = float32(in.cursorY - g.lastY)
	}
	g.lastX, g.lastY = in.cursorX, in.cursorY
	g.wasLooking = in.looking

	if in.mute {
		g.session.ToggleMute()
		g.renderer.SetStatus(g.session.Status())
	}
	if in.quit {
		g.quit = true
	}

	cam := g.session.Camera
	cam.Update(in.controls, g.lastDelta)
	return engine.FrameInput{
		FirePressed: in.firePressed,
		TogglePause: in.pause,
		CameraPos:   cam.Position(),
		CameraDir:   cam.Direction(),
		View:        cam.View(),
		Projection:  cam.Projection(),
	}
}

// Render stores the projected frame for Draw
func (g *Game) Render(calls []engine.DrawCall, report engine.FrameReport) {
	g.lastDelta = float32(report.Delta)
	g.renderer.Prepare(calls, report, g.session.Camera.Projection())
}

func (g *Game) ShouldExit() bool {
	return g.quit
}
