package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/ufo-shooter/constants"
)

// Settings are the tunable camera parameters
type Settings struct {
	Position         mgl32.Vec3
	Yaw              float32 // Radians, pi faces -Z
	Pitch            float32 // Radians
	FOVDegrees       float32
	Near             float32
	Far              float32
	MoveSpeed        float32 // Units per second
	TurnSpeed        float32 // Radians per second for keyboard look
	MouseSensitivity float32 // Radians per pixel
}

// DefaultSettings returns the stock first-person camera
func DefaultSettings() Settings {
	return Settings{
		Position:         mgl32.Vec3{constants.CameraStartX, constants.CameraStartY, constants.CameraStartZ},
		Yaw:              math.Pi,
		FOVDegrees:       constants.CameraFOVDegrees,
		Near:             constants.CameraNear,
		Far:              constants.CameraFar,
		MoveSpeed:        constants.CameraMoveSpeed,
		TurnSpeed:        constants.CameraTurnSpeed,
		MouseSensitivity: constants.CameraMouseSensitivity,
	}
}

// Controls is the per-frame movement and look intent
type Controls struct {
	Forward, Back bool
	Left, Right   bool
	Rise, Sink    bool
	TurnLeft      bool
	TurnRight     bool
	LookUp        bool
	LookDown      bool
	MouseDX       float32 // Pixels, positive is right
	MouseDY       float32 // Pixels, positive is down
}

// Camera is a first-person viewpoint with yaw and pitch
type Camera struct {
	settings Settings
	position mgl32.Vec3
	yaw      float32
	pitch    float32
	aspect   float32
}

// New creates a camera; aspect is viewport width over height
func New(s Settings, aspect float32) *Camera {
	if aspect <= 0 {
		aspect = 1
	}
	c := &Camera{
		settings: s,
		position: s.Position,
		yaw:      s.Yaw,
		aspect:   aspect,
	}
	c.setPitch(s.Pitch)
	return c
}

// Update applies look then movement for dt seconds
func (c *Camera) Update(ctl Controls, dt float32) {
	if dt < 0 {
		dt = 0
	}

	turn := c.settings.TurnSpeed * dt
	yaw := c.yaw - ctl.MouseDX*c.settings.MouseSensitivity
	pitch := c.pitch - ctl.MouseDY*c.settings.MouseSensitivity
	if ctl.TurnLeft {
		yaw += turn
	}
	if ctl.TurnRight {
		yaw -= turn
	}
	if ctl.LookUp {
		pitch += turn
	}
	if ctl.LookDown {
		pitch -= turn
	}
	c.yaw = float32(math.Mod(float64(yaw), 2*math.Pi))
	c.setPitch(pitch)

	forward := c.Direction()
	right := c.Right()
	up := mgl32.Vec3{0, 1, 0}
	var move mgl32.Vec3
	if ctl.Forward {
		move = move.Add(forward)
	}
	if ctl.Back {
		move = move.Sub(forward)
	}
	if ctl.Right {
		move = move.Add(right)
	}
	if ctl.Left {
		move = move.Sub(right)
	}
	if ctl.Rise {
		move = move.Add(up)
	}
	if ctl.Sink {
		move = move.Sub(up)
	}
	if move.Len() > 0 {
		c.position = c.position.Add(move.Normalize().Mul(c.settings.MoveSpeed * dt))
	}
}

func (c *Camera) setPitch(p float32) {
	limit := mgl32.DegToRad(constants.CameraPitchLimitDegrees)
	c.pitch = mgl32.Clamp(p, -limit, limit)
}

// Direction returns the unit forward vector
func (c *Camera) Direction() mgl32.Vec3 {
	yaw, pitch := float64(c.yaw), float64(c.pitch)
	return mgl32.Vec3{
		float32(math.Cos(pitch) * math.Sin(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Cos(yaw)),
	}
}

// Right returns the unit horizontal right vector
func (c *Camera) Right() mgl32.Vec3 {
	yaw := float64(c.yaw) - math.Pi/2
	return mgl32.Vec3{float32(math.Sin(yaw)), 0, float32(math.Cos(yaw))}
}

// Up returns the camera up vector, perpendicular to Direction and Right
func (c *Camera) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Direction())
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

func (c *Camera) Yaw() float32 {
	return c.yaw
}

func (c *Camera) Pitch() float32 {
	return c.pitch
}

// View is the look-at matrix from the camera position along Direction
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.Direction()), c.Up())
}

// Projection is the perspective matrix for the current aspect
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.settings.FOVDegrees), c.aspect, c.settings.Near, c.settings.Far)
}

// SetAspect updates the viewport width over height ratio
func (c *Camera) SetAspect(aspect float32) {
	if aspect > 0 {
		c.aspect = aspect
	}
}

func (c *Camera) Aspect() float32 {
	return c.aspect
}

// Settings returns the configuration the camera was built with
func (c *Camera) Settings() Settings {
	return c.settings
}
