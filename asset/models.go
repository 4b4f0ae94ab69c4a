package asset

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/ufo-shooter/constants"
)

// Mesh is a procedural model approximated by a bounding sphere
type Mesh struct {
	Name   string
	Radius float32 // Model-space bounding radius
	Marker bool    // Draw a spin marker on +X
}

// Texture is a flat two-tone material, colors in [0,1]
type Texture struct {
	Name   string
	Base   mgl32.Vec3
	Accent mgl32.Vec3
}

// Models holds the fixed model set and the handles the simulation draws with
type Models struct {
	Meshes   *Library[Mesh]
	Textures *Library[Texture]

	TargetMesh        Handle
	TargetTexture     Handle
	ProjectileMesh    Handle
	ProjectileTexture Handle
}

// LoadModels registers the built-in target and projectile models
func LoadModels() (*Models, error) {
	m := &Models{
		Meshes:   NewLibrary[Mesh](),
		Textures: NewLibrary[Texture](),
	}

	var err error
	if m.TargetMesh, err = m.Meshes.Register("ufo", Mesh{
		Name:   "ufo",
		Radius: constants.EnemyModelRadius,
		Marker: true,
	}, nil); err != nil {
		return nil, fmt.Errorf("register target mesh: %w", err)
	}
	if m.TargetTexture, err = m.Textures.Register("ufo", Texture{
		Name:   "ufo",
		Base:   mgl32.Vec3{0.55, 0.6, 0.7},
		Accent: mgl32.Vec3{0.2, 1.0, 0.4},
	}, nil); err != nil {
		return nil, fmt.Errorf("register target texture: %w", err)
	}
	if m.ProjectileMesh, err = m.Meshes.Register("bullet", Mesh{
		Name:   "bullet",
		Radius: constants.BulletModelRadius,
	}, nil); err != nil {
		return nil, fmt.Errorf("register projectile mesh: %w", err)
	}
	if m.ProjectileTexture, err = m.Textures.Register("bullet", Texture{
		Name:   "bullet",
		Base:   mgl32.Vec3{1.0, 0.85, 0.2},
		Accent: mgl32.Vec3{1.0, 1.0, 0.8},
	}, nil); err != nil {
		return nil, fmt.Errorf("register projectile texture: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks every handle the simulation uses resolves
func (m *Models) Validate() error {
	for _, h := range []Handle{m.TargetMesh, m.ProjectileMesh} {
		if _, err := m.Meshes.Get(h); err != nil {
			return fmt.Errorf("mesh: %w", err)
		}
	}
	for _, h := range []Handle{m.TargetTexture, m.ProjectileTexture} {
		if _, err := m.Textures.Get(h); err != nil {
			return fmt.Errorf("texture: %w", err)
		}
	}
	return nil
}

// Close releases textures then meshes
func (m *Models) Close() error {
	texErr := m.Textures.Close()
	meshErr := m.Meshes.Close()
	if texErr != nil {
		return texErr
	}
	return meshErr
}
