package teleport

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/vrloco/game"
)

// AimState is the ray the user is aiming along this frame.
type AimState struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// AimFromTransform derives the aim from a tracked controller transform: its location and its
// forward axis.
func AimFromTransform(t game.Transform) AimState {
	return AimState{Origin: t.Location, Direction: game.SafeNormal(t.Forward())}
}

// PredictedPath holds world-space samples along a candidate trajectory. It is nil when no
// query was made or nothing was hit.
type PredictedPath []mgl32.Vec3

// Destination is a teleport target. Valid implies Point lies on a walkable surface found
// within the projection extent of the hit.
type Destination struct {
	Point mgl32.Vec3
	Valid bool
}
