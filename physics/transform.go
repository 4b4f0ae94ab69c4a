package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/ufo-shooter/component"
)

// Rotate builds a rotation of angle radians around axis
// The axis is normalized here, as the GLM primitive does, so stored axes keep
// their raw sampled length; a zero axis yields identity
func Rotate(angle float32, axis mgl32.Vec3) mgl32.Mat4 {
	if axis.Len() == 0 {
		return mgl32.Ident4()
	}
	return mgl32.HomogRotate3D(angle, axis.Normalize())
}

// TargetTransform is the model matrix translate(position) * rotate(orientation)
func TargetTransform(t component.Target, now float64) mgl32.Mat4 {
	o := TargetOrientation(t, now)
	translation := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	return translation.Mul4(Rotate(o.Angle, o.Axis))
}

// ProjectileTransform is the model matrix translate(position) * uniform scale
// The diagonal includes w, so after perspective division the scale cancels
func ProjectileTransform(p component.Projectile, scale float32) mgl32.Mat4 {
	translation := mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z())
	return translation.Mul4(mgl32.Ident4().Mul(scale))
}

// MVP composes projection * view * model
func MVP(projection, view, model mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(view).Mul4(model)
}
