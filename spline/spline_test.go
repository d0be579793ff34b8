package spline

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/vrloco/game"
	"github.com/oomph-ac/vrloco/teleport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approx(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	assert.True(t, game.Vec3ApproxEq(expected, actual, 1e-3), "expected %v, got %v", expected, actual)
}

func TestSplineInterpolatesPoints(t *testing.T) {
	points := []mgl32.Vec3{{0, 0, 0}, {100, 0, 50}, {200, 0, 60}, {300, 0, 0}}
	s := New(points...)
	require.Equal(t, 4, s.Len())

	approx(t, points[0], s.Evaluate(0))
	approx(t, points[1], s.Evaluate(1.0/3.0))
	approx(t, points[2], s.Evaluate(2.0/3.0))
	approx(t, points[3], s.Evaluate(1))

	// Outside the curve range clamps to the end points.
	approx(t, points[0], s.Evaluate(-1))
	approx(t, points[3], s.Evaluate(2))
}

func TestSplineStraightLine(t *testing.T) {
	s := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 0, 0})
	approx(t, mgl32.Vec3{5, 0, 0}, s.Evaluate(0.5))
}

func TestSplineDegenerate(t *testing.T) {
	s := New()
	assert.Equal(t, mgl32.Vec3{}, s.Evaluate(0.5))
	assert.Empty(t, s.Sample(8))

	s.AddPoint(mgl32.Vec3{1, 2, 3})
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, s.Evaluate(0.5))
	assert.Equal(t, []mgl32.Vec3{{1, 2, 3}}, s.Sample(8))
}

func TestSplineSample(t *testing.T) {
	s := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 0, 0}, mgl32.Vec3{20, 0, 0})
	samples := s.Sample(4)
	require.Len(t, samples, 9)
	approx(t, mgl32.Vec3{0, 0, 0}, samples[0])
	approx(t, mgl32.Vec3{10, 0, 0}, samples[4])
	assert.Equal(t, mgl32.Vec3{20, 0, 0}, samples[8])
	for i := 1; i < len(samples); i++ {
		assert.Greater(t, samples[i].X(), samples[i-1].X())
	}
}

func TestSplinePointsAreCopied(t *testing.T) {
	s := New(mgl32.Vec3{1, 0, 0})
	points := s.Points()
	points[0] = mgl32.Vec3{9, 9, 9}
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, s.Points()[0])
}

func TestVisualizerConvertsToLocalSpace(t *testing.T) {
	frame := game.NewTransform(mgl32.Vec3{100, 50, 10}, game.YawRotation(90))
	path := teleport.PredictedPath{{100, 50, 10}, {100, 150, 10}, {0, 50, 0}}

	v := NewVisualizer()
	v.Update(path, frame)

	points := v.Spline().Points()
	require.Len(t, points, 3)
	approx(t, mgl32.Vec3{0, 0, 0}, points[0])
	approx(t, mgl32.Vec3{100, 0, 0}, points[1])
	approx(t, mgl32.Vec3{0, 100, -10}, points[2])

	world := v.Spline().WorldPoints(frame)
	for i := range path {
		approx(t, path[i], world[i])
	}
}

func TestVisualizerRebuildsEveryUpdate(t *testing.T) {
	v := NewVisualizer()
	frame := game.IdentityTransform()

	v.Update(teleport.PredictedPath{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}, frame)
	require.Equal(t, 3, v.Spline().Len())

	path := teleport.PredictedPath{{5, 5, 5}, {6, 6, 6}}
	v.Update(path, frame)
	assert.Equal(t, []mgl32.Vec3{{5, 5, 5}, {6, 6, 6}}, v.Spline().Points())

	path[0] = mgl32.Vec3{-1, -1, -1}
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, v.Spline().Points()[0], "the caller's path must not be retained")

	v.Update(nil, frame)
	assert.Zero(t, v.Spline().Len())
}
