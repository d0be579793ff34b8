package vignette

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/vrloco/game"
)

// ScreenProjector projects world positions onto the screen of the local player.
type ScreenProjector interface {
	// WorldToScreen returns the pixel position of p with the origin at the top left of the
	// viewport. It returns false when p cannot be projected, for example when it lies behind the
	// camera.
	WorldToScreen(p mgl32.Vec3) (mgl32.Vec2, bool)
	// ViewportSize returns the size of the viewport in pixels.
	ViewportSize() (width, height int)
}

const (
	defaultNearPlane = 10
	defaultFarPlane  = 100000
)

// PerspectiveProjector is a pinhole camera ScreenProjector.
type PerspectiveProjector struct {
	camera        game.Transform
	fovY          float32
	width, height int
	near, far     float32
}

// NewPerspectiveProjector returns a projector for a camera with the given vertical field of view
// in degrees and viewport size in pixels.
func NewPerspectiveProjector(camera game.Transform, fovY float32, width, height int) *PerspectiveProjector {
	return &PerspectiveProjector{
		camera: camera,
		fovY:   fovY,
		width:  width,
		height: height,
		near:   defaultNearPlane,
		far:    defaultFarPlane,
	}
}

// SetCamera moves the camera the projector projects for.
func (p *PerspectiveProjector) SetCamera(camera game.Transform) {
	p.camera = camera
}

// ViewportSize ...
func (p *PerspectiveProjector) ViewportSize() (int, int) {
	return p.width, p.height
}

// WorldToScreen ...
func (p *PerspectiveProjector) WorldToScreen(point mgl32.Vec3) (mgl32.Vec2, bool) {
	if p.width <= 0 || p.height <= 0 {
		return mgl32.Vec2{}, false
	}
	eye, forward := p.camera.Location, p.camera.Forward()
	if point.Sub(eye).Dot(forward) <= 0 {
		return mgl32.Vec2{}, false
	}

	view := mgl32.LookAtV(eye, eye.Add(forward), p.camera.Up())
	proj := mgl32.Perspective(mgl32.DegToRad(p.fovY), float32(p.width)/float32(p.height), p.near, p.far)
	win := mgl32.Project(point, view, proj, 0, 0, p.width, p.height)
	if win.Z() < 0 || win.Z() > 1 {
		return mgl32.Vec2{}, false
	}

	// LookAtV assumes a right handed basis while +Y points right in the world, so the horizontal
	// axis comes out mirrored. The vertical axis is flipped to a top left origin.
	return mgl32.Vec2{float32(p.width) - win.X(), float32(p.height) - win.Y()}, true
}
