package world

import (
	"cmp"
	"slices"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/vrloco/game"
	"github.com/oomph-ac/vrloco/spatial"
)

const (
	defaultSimFrequency = 20
	// walkableClearance is the gap left between a walkable top face and the bottom of the agent
	// standing on it.
	walkableClearance = 1
	// pushOutMargin is added to the agent radius when moving a point away from geometry.
	pushOutMargin = 1e-2
)

// CastSegment ...
func (w *World) CastSegment(origin, end mgl32.Vec3, _ spatial.Channel) (spatial.Hit, bool) {
	return w.sweep(origin, end, 0)
}

// SimulateProjectile steps the projectile with constant-acceleration sub-steps, sweeping each
// sub-step against the geometry.
func (w *World) SimulateProjectile(params spatial.ProjectileParams) spatial.ProjectileResult {
	result := spatial.ProjectileResult{Path: []mgl32.Vec3{params.Origin}}
	if params.Horizon <= 0 {
		return result
	}

	freq := params.Frequency
	if freq <= 0 {
		freq = defaultSimFrequency
	}
	step := 1 / freq
	steps := int(math32.Ceil(params.Horizon * freq))
	gravity := mgl32.Vec3{0, 0, params.GravityZ}

	pos, vel := params.Origin, params.Velocity
	travelled := float32(0)
	for i := 0; i < steps; i++ {
		dt := step
		if remaining := params.Horizon - float32(i)*step; remaining < dt {
			dt = remaining
		}
		next := pos.Add(vel.Mul(dt)).Add(gravity.Mul(0.5 * dt * dt))

		if hit, ok := w.sweep(pos, next, params.Radius); ok {
			hit.Distance += travelled
			result.Path = append(result.Path, hit.Location)
			result.Hit, result.HasHit = hit, true
			return result
		}

		travelled += next.Sub(pos).Len()
		vel = vel.Add(gravity.Mul(dt))
		pos = next
		result.Path = append(result.Path, pos)
	}
	return result
}

// ProjectToWalkable snaps point onto the closest walkable top face reachable within extent. The
// agent set through SetAgent must fit standing on the snapped point: the point is pushed out of
// nearby geometry by the agent radius, and rejected when no such spot exists on the face.
func (w *World) ProjectToWalkable(point, extent mgl32.Vec3) (mgl32.Vec3, bool) {
	var (
		best     mgl32.Vec3
		bestDist float32
		found    bool
	)
	for i, s := range w.surfaces {
		if !s.Walkable {
			continue
		}
		min, max := s.BBox.Min(), s.BBox.Max()
		candidate := mgl32.Vec3{
			game.ClampFloat32(point.X(), min.X(), max.X()),
			game.ClampFloat32(point.Y(), min.Y(), max.Y()),
			max.Z(),
		}
		if !withinExtent(candidate.Sub(point), extent) {
			continue
		}
		candidate, ok := w.fit(i, candidate)
		if !ok {
			continue
		}
		delta := candidate.Sub(point)
		if !withinExtent(delta, extent) {
			continue
		}
		if dist := delta.LenSqr(); !found || dist < bestDist {
			best, bestDist, found = candidate, dist, true
		}
	}
	return best, found
}

func withinExtent(delta, extent mgl32.Vec3) bool {
	return math32.Abs(delta.X()) <= extent.X() && math32.Abs(delta.Y()) <= extent.Y() && math32.Abs(delta.Z()) <= extent.Z()
}

// agentAt returns the box of the agent standing on p.
func (w *World) agentAt(p mgl32.Vec3) cube.BBox {
	return w.agent.Translate(p.Add(mgl32.Vec3{0, 0, w.agentHalfHeight + walkableClearance}))
}

// blocker returns the first surface other than the one at index floor that the agent standing on
// p would overlap.
func (w *World) blocker(floor int, p mgl32.Vec3) (cube.BBox, bool) {
	agent := w.agentAt(p)
	for i, s := range w.surfaces {
		if i != floor && agent.IntersectsWith(s.BBox) {
			return s.BBox, true
		}
	}
	return cube.BBox{}, false
}

// fit moves p horizontally until the agent standing on it overlaps nothing, keeping it on the top
// face of the surface at index floor.
func (w *World) fit(floor int, p mgl32.Vec3) (mgl32.Vec3, bool) {
	face := w.surfaces[floor].BBox
	for n := len(w.surfaces); n > 0; n-- {
		bb, blocked := w.blocker(floor, p)
		if !blocked {
			return p, true
		}
		grown := bb.GrowVec3(mgl32.Vec3{w.agentRadius + pushOutMargin, w.agentRadius + pushOutMargin, 0})
		exits := []mgl32.Vec3{
			{grown.Min().X(), p.Y(), p.Z()},
			{grown.Max().X(), p.Y(), p.Z()},
			{p.X(), grown.Min().Y(), p.Z()},
			{p.X(), grown.Max().Y(), p.Z()},
		}
		slices.SortFunc(exits, func(a, b mgl32.Vec3) int {
			return cmp.Compare(a.Sub(p).LenSqr(), b.Sub(p).LenSqr())
		})

		next, ok := mgl32.Vec3{}, false
		for _, exit := range exits {
			if !face.Vec3WithinXY(exit) {
				continue
			}
			if _, blocked := w.blocker(floor, exit); !blocked {
				return exit, true
			}
			if !ok {
				next, ok = exit, true
			}
		}
		if !ok {
			return p, false
		}
		p = next
	}
	return p, false
}

// sweep finds the first surface hit by a sphere of the given radius moving from start to end.
// The sphere is approximated by growing each box by the radius.
func (w *World) sweep(start, end mgl32.Vec3, radius float32) (spatial.Hit, bool) {
	var (
		best     spatial.Hit
		bestDist = float32(math32.MaxFloat32)
		found    bool
	)
	for _, s := range w.surfaces {
		bb := s.BBox
		if radius > 0 {
			bb = bb.Grow(radius)
		}

		var location mgl32.Vec3
		if bb.Vec3Within(start) {
			location = start
		} else {
			res, ok := trace.BBoxIntercept(bb, start, end)
			if !ok {
				continue
			}
			location = res.Position()
		}

		dist := location.Sub(start).Len()
		if dist >= bestDist {
			continue
		}
		impact := game.ClosestPointToBBox(location, s.BBox)
		best = spatial.Hit{
			Location:    location,
			ImpactPoint: impact,
			Normal:      game.BBoxSurfaceNormal(s.BBox, impact),
			Distance:    dist,
		}
		bestDist, found = dist, true
	}
	return best, found
}
