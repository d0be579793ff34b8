package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBFromDimensions returns a bounding box of the given width and height, centred on the origin
// horizontally and vertically. It matches a capsule whose location is its centre.
func AABBFromDimensions(width, halfHeight float32) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, -h, -halfHeight,
		h, h, halfHeight,
	)
}

// ClosestPointToBBox returns the point inside or on the surface of the box closest to v.
func ClosestPointToBBox(v mgl32.Vec3, bb cube.BBox) mgl32.Vec3 {
	min, max := bb.Min(), bb.Max()
	return mgl32.Vec3{
		ClampFloat32(v.X(), min.X(), max.X()),
		ClampFloat32(v.Y(), min.Y(), max.Y()),
		ClampFloat32(v.Z(), min.Z(), max.Z()),
	}
}

// BBoxSurfaceNormal returns the outward normal of the face of bb that p lies on. Points on an edge
// resolve to the face whose plane is nearest.
func BBoxSurfaceNormal(bb cube.BBox, p mgl32.Vec3) mgl32.Vec3 {
	min, max := bb.Min(), bb.Max()
	best, normal := float32(math32.MaxFloat32), UpVector
	candidates := [6]struct {
		dist   float32
		normal mgl32.Vec3
	}{
		{math32.Abs(p.X() - min.X()), mgl32.Vec3{-1, 0, 0}},
		{math32.Abs(p.X() - max.X()), mgl32.Vec3{1, 0, 0}},
		{math32.Abs(p.Y() - min.Y()), mgl32.Vec3{0, -1, 0}},
		{math32.Abs(p.Y() - max.Y()), mgl32.Vec3{0, 1, 0}},
		{math32.Abs(p.Z() - min.Z()), mgl32.Vec3{0, 0, -1}},
		{math32.Abs(p.Z() - max.Z()), mgl32.Vec3{0, 0, 1}},
	}
	for _, c := range candidates {
		if c.dist < best {
			best, normal = c.dist, c.normal
		}
	}
	return normal
}
