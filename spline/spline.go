package spline

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/vrloco/game"
)

// Spline is a smooth curve passing through an ordered list of points expressed in the local
// space of its owner. Each span between two consecutive points is a cubic Bézier whose control
// points are derived Catmull-Rom style from the neighbouring points, so the curve is C1
// continuous and interpolates every point.
type Spline struct {
	points []mgl32.Vec3
}

// New returns a spline through the given points.
func New(points ...mgl32.Vec3) *Spline {
	s := &Spline{}
	for _, p := range points {
		s.AddPoint(p)
	}
	return s
}

// AddPoint appends a point to the end of the spline.
func (s *Spline) AddPoint(p mgl32.Vec3) {
	s.points = append(s.points, p)
}

// Clear removes every point. The backing storage is kept for the next rebuild.
func (s *Spline) Clear() {
	s.points = s.points[:0]
}

// Len returns the number of points on the spline.
func (s *Spline) Len() int {
	return len(s.points)
}

// Points returns a copy of the points of the spline.
func (s *Spline) Points() []mgl32.Vec3 {
	points := make([]mgl32.Vec3, len(s.points))
	copy(points, s.points)
	return points
}

// Evaluate returns the position on the spline at t, where 0 is the first point and 1 the last.
// Every span takes an equal share of t. An empty spline evaluates to the zero vector.
func (s *Spline) Evaluate(t float32) mgl32.Vec3 {
	switch len(s.points) {
	case 0:
		return mgl32.Vec3{}
	case 1:
		return s.points[0]
	}
	t = game.ClampFloat32(t, 0, 1)
	spans := len(s.points) - 1

	scaled := t * float32(spans)
	span := int(scaled)
	if span >= spans {
		span = spans - 1
	}
	return s.evaluateSpan(span, scaled-float32(span))
}

// Sample returns stepsPerSpan positions for every span plus the final point. It is what a
// renderer draws as a polyline.
func (s *Spline) Sample(stepsPerSpan int) []mgl32.Vec3 {
	if len(s.points) < 2 || stepsPerSpan < 1 {
		return s.Points()
	}
	spans := len(s.points) - 1
	samples := make([]mgl32.Vec3, 0, spans*stepsPerSpan+1)
	for span := 0; span < spans; span++ {
		for step := 0; step < stepsPerSpan; step++ {
			samples = append(samples, s.evaluateSpan(span, float32(step)/float32(stepsPerSpan)))
		}
	}
	return append(samples, s.points[len(s.points)-1])
}

// WorldPoints returns the points of the spline mapped out of the local space frame.
func (s *Spline) WorldPoints(frame game.Transform) []mgl32.Vec3 {
	points := make([]mgl32.Vec3, len(s.points))
	for i, p := range s.points {
		points[i] = frame.TransformPosition(p)
	}
	return points
}

func (s *Spline) evaluateSpan(span int, t float32) mgl32.Vec3 {
	p1, p2 := s.points[span], s.points[span+1]
	p0, p3 := p1, p2
	if span > 0 {
		p0 = s.points[span-1]
	}
	if span+2 < len(s.points) {
		p3 = s.points[span+2]
	}

	c1 := p1.Add(p2.Sub(p0).Mul(1.0 / 6.0))
	c2 := p2.Sub(p3.Sub(p1).Mul(1.0 / 6.0))
	return mgl32.CubicBezierCurve3D(t, p1, c1, c2, p2)
}
