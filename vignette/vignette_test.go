package vignette

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/vrloco/game"
	"github.com/oomph-ac/vrloco/oerror"
	"github.com/oomph-ac/vrloco/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProjector struct {
	screen        mgl32.Vec2
	ok            bool
	width, height int

	projected []mgl32.Vec3
}

func (s *stubProjector) WorldToScreen(p mgl32.Vec3) (mgl32.Vec2, bool) {
	s.projected = append(s.projected, p)
	return s.screen, s.ok
}

func (s *stubProjector) ViewportSize() (int, int) {
	return s.width, s.height
}

type recordingSink struct {
	scalars map[string]float32
	vectors map[string]mgl32.Vec4
}

func newRecordingSink() *recordingSink {
	return &recordingSink{scalars: map[string]float32{}, vectors: map[string]mgl32.Vec4{}}
}

func (r *recordingSink) SetScalarParameterValue(name string, value float32) {
	r.scalars[name] = value
}

func (r *recordingSink) SetVectorParameterValue(name string, value mgl32.Vec4) {
	r.vectors[name] = value
}

func defaultController() *Controller {
	return NewController(CurveFromSettings(settings.Default()))
}

func TestStationaryIsScreenCentre(t *testing.T) {
	proj := &stubProjector{screen: mgl32.Vec2{10, 10}, ok: true, width: 100, height: 100}
	params, ok := defaultController().Update(mgl32.Vec3{}, game.ForwardVector, mgl32.Vec3{}, proj)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, params.Centre)
	assert.Equal(t, float32(1), params.Radius)
	assert.Empty(t, proj.projected, "no projection without a direction of travel")

	params, _ = defaultController().Update(mgl32.Vec3{1e-5, 0, 0}, game.ForwardVector, mgl32.Vec3{}, proj)
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, params.Centre)
}

func TestRadiusIsNonIncreasingWithSpeed(t *testing.T) {
	c := defaultController()
	proj := &stubProjector{screen: mgl32.Vec2{50, 50}, ok: true, width: 100, height: 100}

	last := float32(2)
	for speed := float32(0); speed <= 1000; speed += 25 {
		params, ok := c.Update(mgl32.Vec3{speed, 0, 0}, game.ForwardVector, mgl32.Vec3{}, proj)
		require.True(t, ok)
		assert.GreaterOrEqual(t, params.Radius, float32(0))
		assert.LessOrEqual(t, params.Radius, last, "speed %v", speed)
		last = params.Radius
	}
}

func TestNoCurveDisablesVignette(t *testing.T) {
	s := settings.Default()
	s.Vignette.RadiusVsVelocity = nil
	c := NewController(CurveFromSettings(s))
	assert.False(t, c.Enabled())

	params, ok := c.Update(mgl32.Vec3{100, 0, 0}, game.ForwardVector, mgl32.Vec3{}, &stubProjector{})
	assert.False(t, ok)
	assert.Equal(t, Parameters{}, params)

	s = settings.Default()
	s.Vignette.Enabled = false
	assert.Nil(t, CurveFromSettings(s))
}

func TestNegativeCurveValuesClampToZero(t *testing.T) {
	c := NewController(NewCurve(settings.CurveKey{Time: 0, Value: -1}))
	params, ok := c.Update(mgl32.Vec3{}, game.ForwardVector, mgl32.Vec3{}, nil)
	require.True(t, ok)
	assert.Zero(t, params.Radius)
}

func TestCentreDirection(t *testing.T) {
	camPos := mgl32.Vec3{0, 0, 170}
	proj := &stubProjector{screen: mgl32.Vec2{25, 75}, ok: true, width: 100, height: 100}

	// Moving along the view direction places the point ahead of the camera.
	centre := Centre(mgl32.Vec3{300, 0, 0}, game.ForwardVector, camPos, proj)
	assert.Equal(t, mgl32.Vec2{0.25, 0.75}, centre)
	require.Len(t, proj.projected, 1)
	assert.True(t, game.Vec3ApproxEq(mgl32.Vec3{1000, 0, 170}, proj.projected[0], 1e-3))

	// Moving backwards places it behind the direction of travel, in front of the camera.
	Centre(mgl32.Vec3{-300, 0, 0}, game.ForwardVector, camPos, proj)
	require.Len(t, proj.projected, 2)
	assert.True(t, game.Vec3ApproxEq(mgl32.Vec3{1000, 0, 170}, proj.projected[1], 1e-3))
}

func TestCentreFallsBackToScreenCentre(t *testing.T) {
	v := mgl32.Vec3{300, 0, 0}
	assert.Equal(t, screenCentre, Centre(v, game.ForwardVector, mgl32.Vec3{}, &stubProjector{ok: false, width: 100, height: 100}))
	assert.Equal(t, screenCentre, Centre(v, game.ForwardVector, mgl32.Vec3{}, &stubProjector{ok: true}))
	assert.Equal(t, screenCentre, Centre(v, game.ForwardVector, mgl32.Vec3{}, nil))
}

func TestCentreIsClamped(t *testing.T) {
	proj := &stubProjector{screen: mgl32.Vec2{-40, 400}, ok: true, width: 100, height: 100}
	assert.Equal(t, mgl32.Vec2{0, 1}, Centre(mgl32.Vec3{0, 300, 0}, game.ForwardVector, mgl32.Vec3{}, proj))
}

func TestApply(t *testing.T) {
	sink := newRecordingSink()
	require.NoError(t, Apply(sink, Parameters{Centre: mgl32.Vec2{0.25, 0.5}, Radius: 0.8}))
	assert.Equal(t, float32(0.8), sink.scalars[RadiusParameter])
	assert.Equal(t, mgl32.Vec4{0.25, 0.5, 0, 1}, sink.vectors[CentreParameter])

	assert.ErrorIs(t, Apply(nil, Parameters{}), oerror.ErrMissingConfiguration)
}

func TestCurve(t *testing.T) {
	c := NewCurve(
		settings.CurveKey{Time: 600, Value: 0.5},
		settings.CurveKey{Time: 0, Value: 1},
		settings.CurveKey{Time: 150, Value: 0.8},
	)
	require.Equal(t, 3, c.Len())
	assert.Equal(t, float32(1), c.Evaluate(-10))
	assert.Equal(t, float32(1), c.Evaluate(0))
	assert.InDelta(t, 0.9, c.Evaluate(75), 1e-6)
	assert.Equal(t, float32(0.8), c.Evaluate(150))
	assert.InDelta(t, 0.65, c.Evaluate(375), 1e-6)
	assert.Equal(t, float32(0.5), c.Evaluate(600))
	assert.Equal(t, float32(0.5), c.Evaluate(5000))

	assert.Zero(t, NewCurve().Evaluate(10))
}

func TestPerspectiveProjector(t *testing.T) {
	camera := game.NewTransform(mgl32.Vec3{0, 0, 170}, mgl32.QuatIdent())
	p := NewPerspectiveProjector(camera, 90, 200, 100)

	w, h := p.ViewportSize()
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)

	screen, ok := p.WorldToScreen(mgl32.Vec3{1000, 0, 170})
	require.True(t, ok)
	assert.InDelta(t, 100, screen.X(), 1e-2)
	assert.InDelta(t, 50, screen.Y(), 1e-2)

	screen, ok = p.WorldToScreen(mgl32.Vec3{1000, 100, 170})
	require.True(t, ok)
	assert.Greater(t, screen.X(), float32(100), "right of the camera is right on screen")

	screen, ok = p.WorldToScreen(mgl32.Vec3{1000, 0, 270})
	require.True(t, ok)
	assert.Less(t, screen.Y(), float32(50), "above the camera is towards the top of the screen")

	_, ok = p.WorldToScreen(mgl32.Vec3{-1000, 0, 170})
	assert.False(t, ok, "behind the camera")

	p.SetCamera(game.NewTransform(mgl32.Vec3{0, 0, 170}, game.YawRotation(180)))
	_, ok = p.WorldToScreen(mgl32.Vec3{-1000, 0, 170})
	assert.True(t, ok)
}

func TestControllerWithPerspectiveProjector(t *testing.T) {
	camera := game.NewTransform(mgl32.Vec3{0, 0, 170}, mgl32.QuatIdent())
	p := NewPerspectiveProjector(camera, 90, 100, 100)

	params, ok := defaultController().Update(mgl32.Vec3{600, 0, 0}, camera.Forward(), camera.Location, p)
	require.True(t, ok)
	assert.InDelta(t, 0.5, params.Centre.X(), 1e-3)
	assert.InDelta(t, 0.5, params.Centre.Y(), 1e-3)
	assert.Equal(t, float32(0.5), params.Radius)

	params, _ = defaultController().Update(mgl32.Vec3{400, 300, 0}, camera.Forward(), camera.Location, p)
	assert.Greater(t, params.Centre.X(), float32(0.5), "strafing right moves the centre right")
}
