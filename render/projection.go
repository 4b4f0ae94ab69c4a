package render

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/ufo-shooter/asset"
	"github.com/lixenwraith/ufo-shooter/engine"
)

// Viewport maps normalized device coordinates to screen units
type Viewport struct {
	Width, Height float64 // Screen units: cells or pixels
	CellAspect    float64 // Unit height over unit width, 2 for terminal cells
	Focal         float64 // Projection matrix [1][1], cot(fov/2)
}

// NewViewport builds a viewport for the given projection
func NewViewport(width, height, cellAspect float64, projection mgl32.Mat4) Viewport {
	if cellAspect <= 0 {
		cellAspect = 1
	}
	return Viewport{
		Width:      width,
		Height:     height,
		CellAspect: cellAspect,
		Focal:      float64(projection.At(1, 1)),
	}
}

// Aspect is the world aspect ratio of the viewport, width over height
func (v Viewport) Aspect() float32 {
	if v.Height <= 0 {
		return 1
	}
	return float32(v.Width / (v.Height * v.CellAspect))
}

// Sprite is a draw call flattened to screen space
type Sprite struct {
	Kind    engine.DrawKind
	Mesh    asset.Handle
	Texture asset.Handle

	X, Y    float64 // Center in screen units
	Radius  float64 // Vertical radius in screen units
	RadiusX float64 // Horizontal radius in screen units
	Depth   float64 // View-space distance, larger is farther

	HasMarker        bool
	MarkerX, MarkerY float64 // Projected model +X point
}

// Project transforms the model origin of call and culls it against the view volume
// Models whose uniform scale includes w are normalized so depth stays a view distance
func Project(call engine.DrawCall, mesh asset.Mesh, vp Viewport) (Sprite, bool) {
	clip := call.MVP.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	w := float64(clip.W())
	if w <= 0 {
		return Sprite{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	// Behind the near plane or past the far plane
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return Sprite{}, false
	}

	depth := w
	if ws := float64(call.Model.At(3, 3)); ws > 0 {
		depth = w / ws
	}

	x, y := vp.toScreen(ndc)
	radius := float64(mesh.Radius) * vp.Focal / depth * vp.Height / 2
	radiusX := radius * vp.CellAspect

	if x+radiusX < 0 || x-radiusX > vp.Width || y+radius < 0 || y-radius > vp.Height {
		return Sprite{}, false
	}

	s := Sprite{
		Kind:    call.Kind,
		Mesh:    call.Mesh,
		Texture: call.Texture,
		X:       x,
		Y:       y,
		Radius:  radius,
		RadiusX: radiusX,
		Depth:   depth,
	}

	if mesh.Marker {
		m := call.MVP.Mul4x1(mgl32.Vec4{mesh.Radius, 0, 0, 1})
		if m.W() > 0 {
			s.MarkerX, s.MarkerY = vp.toScreen(m.Vec3().Mul(1 / m.W()))
			s.HasMarker = true
		}
	}
	return s, true
}

func (v Viewport) toScreen(ndc mgl32.Vec3) (float64, float64) {
	x := (float64(ndc.X()) + 1) / 2 * v.Width
	y := (1 - float64(ndc.Y())) / 2 * v.Height
	return x, y
}

// SortBackToFront orders sprites far to near for painter's algorithm drawing
// Equal depths keep submission order
func SortBackToFront(sprites []Sprite) {
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Depth > sprites[j].Depth
	})
}

// ProjectAll projects every visible call using the mesh library and sorts the result
func ProjectAll(dst []Sprite, calls []engine.DrawCall, meshes *asset.Library[asset.Mesh], vp Viewport) []Sprite {
	dst = dst[:0]
	for _, c := range calls {
		mesh, err := meshes.Get(c.Mesh)
		if err != nil {
			continue
		}
		if s, ok := Project(c, mesh, vp); ok {
			dst = append(dst, s)
		}
	}
	SortBackToFront(dst)
	return dst
}
