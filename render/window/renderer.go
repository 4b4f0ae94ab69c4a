// Package window draws frames into an ebiten image for the desktop frontend
package window

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/ufo-shooter/asset"
	"github.com/lixenwraith/ufo-shooter/engine"
	"github.com/lixenwraith/ufo-shooter/render"
)

// ControlsHelp is the window HUD control line
const ControlsHelp = "lmb/space:fire  rmb drag:look  wasd:move  r/f:up/down  p:pause  m:mute  esc:quit"

const (
	crosshairSize  = 8
	minTargetPx    = 2
	projectilePx   = 2
	markerStroke   = 2
	crosshairWidth = 1
)

// Renderer projects draw calls once per tick and paints them in Draw
// Prepare runs from Update, Draw paints the last prepared frame
type Renderer struct {
	meshes   *asset.Library[asset.Mesh]
	textures *asset.Library[asset.Texture]
	sprites  []render.Sprite
	report   engine.FrameReport
	width    int
	height   int
	status   string
}

// NewRenderer creates a window renderer for a width x height pixel surface
func NewRenderer(models *asset.Models, width, height int) *Renderer {
	return &Renderer{
		meshes:   models.Meshes,
		textures: models.Textures,
		width:    width,
		height:   height,
	}
}

// Resize updates the logical surface size
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Size returns the logical surface size
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Viewport returns the pixel viewport for projection, pixels are square
func (r *Renderer) Viewport(projection mgl32.Mat4) render.Viewport {
	return render.NewViewport(float64(r.width), float64(r.height), 1, projection)
}

// SetStatus sets frontend-specific HUD text
func (r *Renderer) SetStatus(s string) {
	r.status = s
}

// Prepare projects and depth sorts the frame for the next Draw
func (r *Renderer) Prepare(calls []engine.DrawCall, report engine.FrameReport, projection mgl32.Mat4) {
	r.sprites = render.ProjectAll(r.sprites, calls, r.meshes, r.Viewport(projection))
	r.report = report
}

// Sprites returns the prepared sprites, far to near
func (r *Renderer) Sprites() []render.Sprite {
	return r.sprites
}

// Draw paints the prepared frame
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(render.RGBSpace.RGBA())

	for i := range r.sprites {
		r.drawSprite(screen, &r.sprites[i])
	}

	cx, cy := float32(r.width)/2, float32(r.height)/2
	cross := render.RGBCrosshair.RGBA()
	vector.StrokeLine(screen, cx-crosshairSize, cy, cx+crosshairSize, cy, crosshairWidth, cross, false)
	vector.StrokeLine(screen, cx, cy-crosshairSize, cx, cy+crosshairSize, crosshairWidth, cross, false)

	ebitenutil.DebugPrint(screen, HUDText(r.report, r.status))
}

func (r *Renderer) drawSprite(screen *ebiten.Image, s *render.Sprite) {
	tex, err := r.textures.Get(s.Texture)
	if err != nil {
		return
	}
	base := render.FromVec3(tex.Base)
	x, y := float32(s.X), float32(s.Y)

	if s.Kind == engine.DrawProjectile {
		radius := float32(math.Max(projectilePx, s.Radius))
		vector.DrawFilledCircle(screen, x, y, radius, base.RGBA(), true)
		return
	}

	radius := float32(math.Max(minTargetPx, s.Radius))
	shade := render.Scale(base, 0.55)
	vector.DrawFilledCircle(screen, x, y, radius, shade.RGBA(), true)
	// Offset highlight disk
	vector.DrawFilledCircle(screen, x-radius*0.2, y-radius*0.25, radius*0.7, base.RGBA(), true)

	if s.HasMarker {
		accent := render.FromVec3(tex.Accent)
		vector.StrokeLine(screen, x, y, float32(s.MarkerX), float32(s.MarkerY), markerStroke, accent.RGBA(), true)
	}
}

// HUDText formats the two-line status overlay
func HUDText(report engine.FrameReport, status string) string {
	s := fmt.Sprintf("ufos %d  bullets %d  t %.1fs  frame %d",
		report.LiveTargets, report.LiveProjectiles, report.Now, report.Frame)
	if status != "" {
		s += "  " + status
	}
	if report.Paused {
		s += "  [PAUSED]"
	}
	return s + "\n" + ControlsHelp
}
