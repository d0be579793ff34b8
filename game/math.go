package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// SmallNumber is the squared-length threshold under which a vector has no usable direction.
	SmallNumber = float32(1e-8)
	// KindaSmallNumber is the per-component tolerance used by IsNearlyZero.
	KindaSmallNumber = float32(1e-4)
)

var (
	UpVector      = mgl32.Vec3{0, 0, 1}
	ForwardVector = mgl32.Vec3{1, 0, 0}
	RightVector   = mgl32.Vec3{0, 1, 0}
)

// ClampFloat32 clamps the given value to the given range.
func ClampFloat32(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}

// Horizontal returns the vector with its vertical component removed.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), v.Y(), 0}
}

// SafeNormal returns the unit vector in the direction of v, or a zero vector when v is too short
// to have a meaningful direction.
func SafeNormal(v mgl32.Vec3) mgl32.Vec3 {
	sq := v.LenSqr()
	if sq == 1 {
		return v
	}
	if sq < SmallNumber {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / math32.Sqrt(sq))
}

// IsNearlyZero reports whether every component of v is within KindaSmallNumber of zero.
func IsNearlyZero(v mgl32.Vec3) bool {
	return math32.Abs(v.X()) <= KindaSmallNumber &&
		math32.Abs(v.Y()) <= KindaSmallNumber &&
		math32.Abs(v.Z()) <= KindaSmallNumber
}

// ClampLen scales v down so that its length does not exceed max.
func ClampLen(v mgl32.Vec3, max float32) mgl32.Vec3 {
	sq := v.LenSqr()
	if sq <= max*max || sq == 0 {
		return v
	}
	return v.Mul(max / math32.Sqrt(sq))
}

// Vec3ApproxEq reports whether two vectors are equal within a per-component tolerance.
func Vec3ApproxEq(a, b mgl32.Vec3, tolerance float32) bool {
	return math32.Abs(a.X()-b.X()) <= tolerance &&
		math32.Abs(a.Y()-b.Y()) <= tolerance &&
		math32.Abs(a.Z()-b.Z()) <= tolerance
}
