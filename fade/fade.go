package fade

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CameraManager fades the view of the local player to and from a solid colour.
type CameraManager interface {
	// StartCameraFade fades the opacity of the colour overlay from from to to over duration.
	StartCameraFade(from, to float32, duration time.Duration, colour mgl32.Vec4)
	// StopCameraFade stops any running fade and clears the overlay.
	StopCameraFade()
}

// ControllerSource yields the camera manager of the player controller currently possessing the
// character. It returns false when no controller is bound.
type ControllerSource interface {
	ActiveCameraManager() (CameraManager, bool)
}

// Fader is a CameraManager that tweens the overlay opacity as the frame advances.
type Fader struct {
	tween  *gween.Tween
	alpha  float32
	colour mgl32.Vec4
}

// NewFader returns a fader with a fully transparent overlay.
func NewFader() *Fader {
	return &Fader{}
}

// StartCameraFade ...
func (f *Fader) StartCameraFade(from, to float32, duration time.Duration, colour mgl32.Vec4) {
	f.colour = colour
	if duration <= 0 {
		f.tween, f.alpha = nil, to
		return
	}
	f.tween, f.alpha = gween.New(from, to, float32(duration.Seconds()), ease.Linear), from
}

// StopCameraFade ...
func (f *Fader) StopCameraFade() {
	f.tween, f.alpha = nil, 0
}

// Tick advances the running fade by dt.
func (f *Fader) Tick(dt time.Duration) {
	if f.tween == nil {
		return
	}
	alpha, finished := f.tween.Update(float32(dt.Seconds()))
	f.alpha = alpha
	if finished {
		f.tween = nil
	}
}

// Alpha returns the current opacity of the overlay, from 0 (clear) to 1 (solid).
func (f *Fader) Alpha() float32 {
	return f.alpha
}

// Colour returns the overlay colour of the most recent fade.
func (f *Fader) Colour() mgl32.Vec4 {
	return f.colour
}

// Fading reports whether a fade is in progress.
func (f *Fader) Fading() bool {
	return f.tween != nil
}
