package spatial

import "github.com/go-gl/mathgl/mgl32"

// Channel selects which geometry a query collides with.
type Channel uint8

const ChannelVisibility Channel = 0

// Hit describes the first blocking contact of a query.
type Hit struct {
	// Location is where the query shape came to rest. For a segment it equals ImpactPoint; for a
	// swept sphere it is the sphere centre at the moment of contact.
	Location mgl32.Vec3
	// ImpactPoint is the contact point on the surface.
	ImpactPoint mgl32.Vec3
	// Normal is the surface normal at the impact point.
	Normal mgl32.Vec3
	// Distance is the distance travelled from the query origin to Location.
	Distance float32
}

// ProjectileParams configures a projectile path prediction.
type ProjectileParams struct {
	Origin   mgl32.Vec3
	Velocity mgl32.Vec3
	// Radius is the collision radius of the projectile. Zero degrades to a line trace.
	Radius float32
	// Horizon is the maximum simulated time in seconds.
	Horizon float32
	// Frequency is the number of sub-steps per simulated second.
	Frequency float32
	// GravityZ is the vertical acceleration.
	GravityZ float32
	Channel  Channel
}

// ProjectileResult is the outcome of a projectile path prediction.
type ProjectileResult struct {
	// Path holds the simulated positions, starting at the origin. When the projectile hit
	// something the final entry is the hit location.
	Path   []mgl32.Vec3
	Hit    Hit
	HasHit bool
}

// Adapter bridges the host engine's spatial queries. All calls are synchronous and report
// failure through their boolean results.
type Adapter interface {
	// CastSegment returns the first blocking hit along the segment from origin to end.
	CastSegment(origin, end mgl32.Vec3, channel Channel) (Hit, bool)
	// SimulateProjectile predicts the path of a projectile under gravity until it hits something
	// or the horizon elapses.
	SimulateProjectile(params ProjectileParams) ProjectileResult
	// ProjectToWalkable snaps point onto the nearest walkable surface within the extent box where
	// the character fits standing, clear of surrounding geometry.
	ProjectToWalkable(point, extent mgl32.Vec3) (mgl32.Vec3, bool)
}
