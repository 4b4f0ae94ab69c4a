package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/ufo-shooter/asset"
	"github.com/lixenwraith/ufo-shooter/constants"
	"github.com/lixenwraith/ufo-shooter/engine"
)

// ControlsHelp is the default HUD control line
const ControlsHelp = "mouse/space:fire  wasd:move  arrows:look  r/f:up/down  p:pause  m:mute  q:quit"

// Precomputed Blinn-Phong lighting, view is (0,0,1)
var (
	lightX, lightY, lightZ float64
	halfX, halfY, halfZ    float64
)

func init() {
	lx, ly, lz := -0.35, -0.55, 0.75
	m := math.Sqrt(lx*lx + ly*ly + lz*lz)
	lightX, lightY, lightZ = lx/m, ly/m, lz/m

	hx, hy, hz := lightX, lightY, lightZ+1.0
	m = math.Sqrt(hx*hx + hy*hy + hz*hz)
	halfX, halfY, halfZ = hx/m, hy/m, hz/m
}

// TerminalRenderer draws projected sprites into a tcell screen
type TerminalRenderer struct {
	screen   tcell.Screen
	meshes   *asset.Library[asset.Mesh]
	textures *asset.Library[asset.Texture]
	sprites  []Sprite
	width    int
	height   int
	status   string // Extra HUD text set by the frontend
}

// NewTerminalRenderer creates a renderer bound to screen and the loaded models
func NewTerminalRenderer(screen tcell.Screen, models *asset.Models) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:   screen,
		meshes:   models.Meshes,
		textures: models.Textures,
		width:    w,
		height:   h,
	}
}

// Resize updates the drawable area after a terminal resize
func (r *TerminalRenderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Viewport returns the 3D area above the HUD for projection
func (r *TerminalRenderer) Viewport(projection mgl32.Mat4) Viewport {
	return NewViewport(float64(r.width), float64(r.viewHeight()), constants.CellAspect, projection)
}

// SetStatus sets frontend-specific HUD text
func (r *TerminalRenderer) SetStatus(s string) {
	r.status = s
}

func (r *TerminalRenderer) viewHeight() int {
	return max(0, r.height-constants.HUDRows)
}

// RenderFrame draws one complete frame and shows it
func (r *TerminalRenderer) RenderFrame(calls []engine.DrawCall, report engine.FrameReport, projection mgl32.Mat4) {
	r.screen.Clear()
	bg := tcell.StyleDefault.Background(RGBSpace.TCell())
	r.fill(bg)

	vp := r.Viewport(projection)
	r.sprites = ProjectAll(r.sprites, calls, r.meshes, vp)
	for i := range r.sprites {
		r.drawSprite(&r.sprites[i], bg)
	}

	r.drawCrosshair(bg)
	r.drawHUD(report)
	r.screen.Show()
}

// Sprites returns the sprites drawn in the last frame, far to near
func (r *TerminalRenderer) Sprites() []Sprite {
	return r.sprites
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.viewHeight(); y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawSprite(s *Sprite, bg tcell.Style) {
	tex, err := r.textures.Get(s.Texture)
	if err != nil {
		return
	}
	base := FromVec3(tex.Base)
	accent := FromVec3(tex.Accent)
	viewH := r.viewHeight()

	// Depth fade keeps far targets dimmer
	depthBright := 1.0 - math.Min(1, s.Depth/constants.CameraFar)*0.6

	if s.Kind == engine.DrawProjectile || s.Radius < 0.75 {
		x, y := int(s.X), int(s.Y)
		if x >= 0 && x < r.width && y >= 0 && y < viewH {
			glyph := constants.BulletChar
			if s.Kind == engine.DrawTarget {
				glyph = constants.EnemyShadeChar
			}
			r.screen.SetContent(x, y, glyph, nil, bg.Foreground(Scale(base, depthBright).TCell()))
		}
		return
	}

	minX := max(0, int(s.X-s.RadiusX-1))
	maxX := min(r.width-1, int(s.X+s.RadiusX+1))
	minY := max(0, int(s.Y-s.Radius-1))
	maxY := min(viewH-1, int(s.Y+s.Radius+1))

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - s.X) / s.RadiusX
			ny := (float64(sy) + 0.5 - s.Y) / s.Radius
			distSq := nx*nx + ny*ny
			if distSq > 1 {
				continue
			}

			nz := math.Sqrt(1 - distSq)
			diffuse := math.Max(0, nx*lightX+ny*lightY+nz*lightZ)
			specular := math.Pow(math.Max(0, nx*halfX+ny*halfY+nz*halfZ), 20) * 0.8

			c := Scale(base, (0.25+0.75*diffuse)*depthBright)
			c = Blend(c, RGB{255, 255, 255}, specular)
			r.screen.SetContent(sx, sy, ' ', nil, bg.Background(c.TCell()))
		}
	}

	if s.HasMarker {
		mx, my := int(s.MarkerX), int(s.MarkerY)
		if mx >= 0 && mx < r.width && my >= 0 && my < viewH {
			r.screen.SetContent(mx, my, constants.EnemyMarkerChar, nil, bg.Foreground(accent.TCell()))
		}
	}
}

func (r *TerminalRenderer) drawCrosshair(bg tcell.Style) {
	cx, cy := r.width/2, r.viewHeight()/2
	if cy < r.viewHeight() && cx < r.width {
		r.screen.SetContent(cx, cy, constants.CrosshairChar, nil, bg.Foreground(RGBCrosshair.TCell()))
	}
}

func (r *TerminalRenderer) drawHUD(report engine.FrameReport) {
	statusY := r.height - 2
	controlY := r.height - 1
	style := tcell.StyleDefault.Foreground(RGBHUD.TCell())

	for y := max(0, statusY); y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}

	s := fmt.Sprintf("ufos %d  bullets %d  t %.1fs  frame %d",
		report.LiveTargets, report.LiveProjectiles, report.Now, report.Frame)
	if r.status != "" {
		s += "  " + r.status
	}
	r.writeStr(1, statusY, s, style)

	if report.Paused {
		r.writeStr(r.width-9, statusY, "[PAUSED]", style.Foreground(RGBPaused.TCell()))
	}
	r.writeStr(1, controlY, ControlsHelp, style.Foreground(Scale(RGBHUD, 0.7).TCell()))
}

func (r *TerminalRenderer) writeStr(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for _, ch := range s {
		if x >= r.width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}
