package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/vrloco/game"
)

// Rig is the hierarchy the offset corrector works on: a body in the world, and a tracking origin
// attached to it under which the headset camera is tracked.
type Rig interface {
	// CameraLocation returns the world location of the headset camera.
	CameraLocation() mgl32.Vec3
	// BodyLocation returns the world location of the body.
	BodyLocation() mgl32.Vec3
	// MoveBody offsets the body, and everything attached to it, in world space.
	MoveBody(offset mgl32.Vec3)
	// MoveTrackingOrigin offsets the tracking origin relative to the body.
	MoveTrackingOrigin(offset mgl32.Vec3)
}

// Pose holds the tracked state of a character. The tracking origin is relative to the body and
// the devices are relative to the tracking origin. Neither the body nor the tracking origin
// rotate.
type Pose struct {
	Body           mgl32.Vec3
	TrackingOrigin mgl32.Vec3
	Head           game.Transform
	RightHand      game.Transform
}

var _ Rig = (*Pose)(nil)

// Root returns the world transform of the tracking origin.
func (p *Pose) Root() game.Transform {
	return game.NewTransform(p.Body.Add(p.TrackingOrigin), mgl32.QuatIdent())
}

// Camera returns the world transform of the headset camera.
func (p *Pose) Camera() game.Transform {
	return p.Root().Compose(p.Head)
}

// Hand returns the world transform of the right motion controller.
func (p *Pose) Hand() game.Transform {
	return p.Root().Compose(p.RightHand)
}

// CameraLocation ...
func (p *Pose) CameraLocation() mgl32.Vec3 {
	return p.Camera().Location
}

// BodyLocation ...
func (p *Pose) BodyLocation() mgl32.Vec3 {
	return p.Body
}

// MoveBody ...
func (p *Pose) MoveBody(offset mgl32.Vec3) {
	p.Body = p.Body.Add(offset)
}

// MoveTrackingOrigin ...
func (p *Pose) MoveTrackingOrigin(offset mgl32.Vec3) {
	p.TrackingOrigin = p.TrackingOrigin.Add(offset)
}

// OffsetCorrector keeps the body underneath the headset when the user walks around their
// physical play space.
type OffsetCorrector struct{}

// Correct moves the body horizontally under the camera and moves the tracking origin back by
// the same amount, so the camera stays where it is in the world. It returns the applied offset.
func (OffsetCorrector) Correct(rig Rig) mgl32.Vec3 {
	offset := game.Horizontal(rig.CameraLocation().Sub(rig.BodyLocation()))
	if offset == (mgl32.Vec3{}) {
		return offset
	}
	rig.MoveBody(offset)
	rig.MoveTrackingOrigin(offset.Mul(-1))
	return offset
}
