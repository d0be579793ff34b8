package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/vrloco/game"
	"github.com/oomph-ac/vrloco/settings"
	"github.com/oomph-ac/vrloco/spatial"
)

var _ spatial.Adapter = (*World)(nil)

var currentWorldId uint64

// Surface is a static box of collision geometry.
type Surface struct {
	BBox cube.BBox
	// Walkable marks the top face of the box as standable ground.
	Walkable bool
}

// World is static box geometry answering spatial queries. It stands in for the host engine's
// physics and navigation systems so that locomotion can run headless and be tested against
// synthetic levels. Every surface blocks every channel.
type World struct {
	id       uint64
	surfaces []Surface

	agent           cube.BBox
	agentRadius     float32
	agentHalfHeight float32
}

// New returns an empty world. Until SetAgent is called, walkable projection treats the agent as
// a point.
func New() *World {
	currentWorldId++
	return &World{id: currentWorldId}
}

// NewForSettings returns an empty world whose agent is the character capsule configured in s.
func NewForSettings(s settings.Settings) *World {
	w := New()
	w.SetAgent(s.Character.Radius, s.Character.HalfHeight)
	return w
}

// SetAgent sets the size of the capsule that must fit on points projected onto walkable
// surfaces. The capsule is approximated by its bounding box.
func (w *World) SetAgent(radius, halfHeight float32) {
	w.agent = game.AABBFromDimensions(radius*2, halfHeight)
	w.agentRadius, w.agentHalfHeight = radius, halfHeight
}

// AgentRadius returns the radius of the agent set through SetAgent.
func (w *World) AgentRadius() float32 {
	return w.agentRadius
}

// ID returns the unique identifier of the world.
func (w *World) ID() uint64 {
	return w.id
}

// AddBox adds a box of geometry to the world.
func (w *World) AddBox(bb cube.BBox, walkable bool) {
	w.surfaces = append(w.surfaces, Surface{BBox: bb, Walkable: walkable})
}

// AddFloor adds a walkable slab whose top face lies at height z.
func (w *World) AddFloor(minX, minY, maxX, maxY, z float32) {
	w.AddBox(cube.Box(minX, minY, z-floorThickness, maxX, maxY, z), true)
}

// AddWall adds a box that blocks queries but cannot be stood on.
func (w *World) AddWall(bb cube.BBox) {
	w.AddBox(bb, false)
}

// Surfaces returns the geometry of the world. The slice must not be modified.
func (w *World) Surfaces() []Surface {
	return w.surfaces
}

// Clear removes all geometry.
func (w *World) Clear() {
	w.surfaces = w.surfaces[:0]
}

const floorThickness = 10
