package teleport

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/vrloco/oerror"
	"github.com/oomph-ac/vrloco/settings"
	"github.com/oomph-ac/vrloco/spatial"
)

// Resolver turns an aim into a validated teleport destination. It holds no per-frame state:
// every call queries the world afresh.
type Resolver struct {
	strategy Strategy
	query    spatial.Adapter
	extent   mgl32.Vec3
}

// NewResolver returns a resolver that builds candidate paths with strategy and validates their
// contact points against walkable surfaces within extent.
func NewResolver(strategy Strategy, query spatial.Adapter, extent mgl32.Vec3) *Resolver {
	return &Resolver{strategy: strategy, query: query, extent: extent}
}

// NewResolverFromSettings builds the strategy named in the settings and wraps it in a resolver.
func NewResolverFromSettings(s settings.Settings, query spatial.Adapter) (*Resolver, error) {
	strategy, err := NewStrategy(s, query)
	if err != nil {
		return nil, err
	}
	return NewResolver(strategy, query, s.Teleport.ProjectionExtent.Vec3()), nil
}

// Strategy returns the strategy used to build candidate paths.
func (r *Resolver) Strategy() Strategy {
	return r.strategy
}

// Resolve predicts the path for aim and validates where it ends. A non-nil error explains why
// the destination is invalid; it is oerror.ErrQueryMiss when nothing was hit and
// oerror.ErrNotWalkable when the hit could not be projected onto walkable ground. In the latter
// case the path is still returned.
func (r *Resolver) Resolve(aim AimState) (PredictedPath, Destination, error) {
	path, hit, ok := r.strategy.CandidatePath(aim)
	if !ok {
		return nil, Destination{}, oerror.ErrQueryMiss
	}

	point, ok := r.query.ProjectToWalkable(hit.Location, r.extent)
	if !ok {
		return path, Destination{}, oerror.ErrNotWalkable
	}
	return path, Destination{Point: point, Valid: true}, nil
}
