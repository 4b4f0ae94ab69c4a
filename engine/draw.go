package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/ufo-shooter/asset"
)

// DrawKind selects how a renderer presents a draw call
type DrawKind uint8

const (
	DrawTarget DrawKind = iota
	DrawProjectile
)

func (k DrawKind) String() string {
	switch k {
	case DrawTarget:
		return "target"
	case DrawProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// DrawCall is one model instance submitted to the renderer
type DrawCall struct {
	Kind    DrawKind
	Model   mgl32.Mat4
	MVP     mgl32.Mat4
	Mesh    asset.Handle
	Texture asset.Handle
}

// Assets are the model handles the simulation attaches to draw calls
type Assets struct {
	TargetMesh        asset.Handle
	TargetTexture     asset.Handle
	ProjectileMesh    asset.Handle
	ProjectileTexture asset.Handle
}

// AssetsFrom extracts draw handles from a loaded model set
func AssetsFrom(m *asset.Models) Assets {
	return Assets{
		TargetMesh:        m.TargetMesh,
		TargetTexture:     m.TargetTexture,
		ProjectileMesh:    m.ProjectileMesh,
		ProjectileTexture: m.ProjectileTexture,
	}
}
