package game

import "github.com/go-gl/mathgl/mgl32"

// Transform is a rigid transform: a rotation followed by a translation. Scale is not modelled;
// tracked devices and the teleport path anchor are never scaled.
type Transform struct {
	Location mgl32.Vec3
	Rotation mgl32.Quat
}

// IdentityTransform returns a transform at the origin with no rotation.
func IdentityTransform() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

// NewTransform returns a transform at the given location with the given rotation.
func NewTransform(location mgl32.Vec3, rotation mgl32.Quat) Transform {
	return Transform{Location: location, Rotation: rotation}
}

func (t Transform) rotation() mgl32.Quat {
	if t.Rotation == (mgl32.Quat{}) {
		return mgl32.QuatIdent()
	}
	return t.Rotation.Normalize()
}

// Mat4 returns the matrix that maps local positions into the parent space.
func (t Transform) Mat4() mgl32.Mat4 {
	return mgl32.Translate3D(t.Location.X(), t.Location.Y(), t.Location.Z()).Mul4(t.rotation().Mat4())
}

// TransformPosition maps a local position into the parent space.
func (t Transform) TransformPosition(p mgl32.Vec3) mgl32.Vec3 {
	return t.rotation().Rotate(p).Add(t.Location)
}

// InverseTransformPosition maps a parent-space position into this transform's local space.
func (t Transform) InverseTransformPosition(p mgl32.Vec3) mgl32.Vec3 {
	return t.rotation().Inverse().Rotate(p.Sub(t.Location))
}

// Forward returns the transform's +X axis in parent space.
func (t Transform) Forward() mgl32.Vec3 {
	return t.rotation().Rotate(ForwardVector)
}

// Right returns the transform's +Y axis in parent space.
func (t Transform) Right() mgl32.Vec3 {
	return t.rotation().Rotate(RightVector)
}

// Up returns the transform's +Z axis in parent space.
func (t Transform) Up() mgl32.Vec3 {
	return t.rotation().Rotate(UpVector)
}

// Compose returns the transform obtained by applying local inside t, i.e. local expressed in
// t's parent space.
func (t Transform) Compose(local Transform) Transform {
	return Transform{
		Location: t.TransformPosition(local.Location),
		Rotation: t.rotation().Mul(local.rotation()),
	}
}

// YawRotation returns a rotation of the given number of degrees about the up axis.
func YawRotation(degrees float32) mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(degrees), UpVector)
}

// PitchRotation returns a rotation of the given number of degrees about the right axis. Positive
// values pitch the forward axis downwards.
func PitchRotation(degrees float32) mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(degrees), RightVector)
}
