package fade

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var black = mgl32.Vec4{0, 0, 0, 1}

func TestFaderTweensAlpha(t *testing.T) {
	f := NewFader()
	f.StartCameraFade(0, 1, time.Second, black)
	assert.True(t, f.Fading())
	assert.Zero(t, f.Alpha())
	assert.Equal(t, black, f.Colour())

	f.Tick(250 * time.Millisecond)
	assert.InDelta(t, 0.25, f.Alpha(), 1e-4)

	f.Tick(250 * time.Millisecond)
	assert.InDelta(t, 0.5, f.Alpha(), 1e-4)

	f.Tick(time.Second)
	assert.Equal(t, float32(1), f.Alpha())
	assert.False(t, f.Fading())

	f.Tick(time.Second)
	assert.Equal(t, float32(1), f.Alpha(), "a finished fade holds its final value")
}

func TestFaderFadeIn(t *testing.T) {
	f := NewFader()
	f.StartCameraFade(1, 0, 2*time.Second, black)
	assert.Equal(t, float32(1), f.Alpha())

	f.Tick(time.Second)
	assert.InDelta(t, 0.5, f.Alpha(), 1e-4)
	f.Tick(time.Second)
	assert.InDelta(t, 0, f.Alpha(), 1e-4)
	assert.False(t, f.Fading())
}

func TestFaderInstantFade(t *testing.T) {
	f := NewFader()
	f.StartCameraFade(0, 1, 0, black)
	assert.False(t, f.Fading())
	assert.Equal(t, float32(1), f.Alpha())
}

func TestFaderRestart(t *testing.T) {
	f := NewFader()
	f.StartCameraFade(0, 1, time.Second, black)
	f.Tick(500 * time.Millisecond)

	f.StartCameraFade(1, 0, time.Second, mgl32.Vec4{1, 1, 1, 1})
	assert.Equal(t, float32(1), f.Alpha())
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, f.Colour())
	f.Tick(time.Second)
	assert.InDelta(t, 0, f.Alpha(), 1e-4)
}

func TestFaderStop(t *testing.T) {
	f := NewFader()
	f.StartCameraFade(0, 1, time.Second, black)
	f.Tick(750 * time.Millisecond)
	assert.InDelta(t, 0.75, f.Alpha(), 1e-4)

	f.StopCameraFade()
	assert.False(t, f.Fading())
	assert.Zero(t, f.Alpha())

	f.Tick(time.Second)
	assert.Zero(t, f.Alpha(), "a stopped fade does not resume")
}
