package teleport

import (
	"fmt"

	"github.com/oomph-ac/vrloco/settings"
	"github.com/oomph-ac/vrloco/spatial"
)

// Strategy produces the candidate path for an aim and the contact that ends it.
type Strategy interface {
	// CandidatePath returns the path and the terminal hit. ok is false when nothing was hit, in
	// which case the path is nil.
	CandidatePath(aim AimState) (path PredictedPath, hit spatial.Hit, ok bool)
}

// DirectStrategy traces a straight segment of MaxDistance along the aim.
type DirectStrategy struct {
	Query       spatial.Adapter
	MaxDistance float32
	Channel     spatial.Channel
}

// CandidatePath ...
func (s DirectStrategy) CandidatePath(aim AimState) (PredictedPath, spatial.Hit, bool) {
	end := aim.Origin.Add(aim.Direction.Mul(s.MaxDistance))
	hit, ok := s.Query.CastSegment(aim.Origin, end, s.Channel)
	if !ok {
		return nil, spatial.Hit{}, false
	}
	return PredictedPath{aim.Origin, hit.Location}, hit, true
}

// BallisticStrategy launches a simulated projectile along the aim and follows it under gravity.
type BallisticStrategy struct {
	Query             spatial.Adapter
	LaunchSpeed       float32
	SimulationHorizon float32
	Frequency         float32
	GravityZ          float32
	ProjectileRadius  float32
	Channel           spatial.Channel
}

// CandidatePath ...
func (s BallisticStrategy) CandidatePath(aim AimState) (PredictedPath, spatial.Hit, bool) {
	res := s.Query.SimulateProjectile(spatial.ProjectileParams{
		Origin:    aim.Origin,
		Velocity:  aim.Direction.Mul(s.LaunchSpeed),
		Radius:    s.ProjectileRadius,
		Horizon:   s.SimulationHorizon,
		Frequency: s.Frequency,
		GravityZ:  s.GravityZ,
		Channel:   s.Channel,
	})
	if !res.HasHit {
		return nil, spatial.Hit{}, false
	}
	path := make(PredictedPath, len(res.Path))
	copy(path, res.Path)
	return path, res.Hit, true
}

// NewStrategy returns the strategy selected by the settings.
func NewStrategy(s settings.Settings, query spatial.Adapter) (Strategy, error) {
	switch s.Teleport.Strategy {
	case settings.StrategyDirect:
		return DirectStrategy{
			Query:       query,
			MaxDistance: s.Teleport.MaxDistance,
			Channel:     spatial.ChannelVisibility,
		}, nil
	case settings.StrategyBallistic:
		return BallisticStrategy{
			Query:             query,
			LaunchSpeed:       s.Teleport.LaunchSpeed,
			SimulationHorizon: s.Teleport.SimulationHorizon,
			Frequency:         s.Teleport.SimulationFrequency,
			GravityZ:          s.Teleport.GravityZ,
			ProjectileRadius:  s.Teleport.ProjectileRadius,
			Channel:           spatial.ChannelVisibility,
		}, nil
	default:
		return nil, fmt.Errorf("unknown teleport strategy %q", s.Teleport.Strategy)
	}
}
