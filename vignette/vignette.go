package vignette

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/vrloco/game"
	"github.com/oomph-ac/vrloco/oerror"
)

const (
	// RadiusParameter is the scalar material parameter receiving the visible radius.
	RadiusParameter = "Radius"
	// CentreParameter is the vector material parameter receiving the screen-space centre.
	CentreParameter = "Centre"

	// stationaryPointDistance is how far along the direction of travel the point the vignette is
	// centred on is placed.
	stationaryPointDistance = 1000
)

// RenderSink receives the vignette parameters, usually a dynamic material instance.
type RenderSink interface {
	SetScalarParameterValue(name string, value float32)
	SetVectorParameterValue(name string, value mgl32.Vec4)
}

// Parameters is the state of the vignette for a single frame. Centre is in normalised screen
// coordinates with the origin at the top left.
type Parameters struct {
	Centre mgl32.Vec2
	Radius float32
}

// screenCentre is the centre used whenever no better one can be computed.
var screenCentre = mgl32.Vec2{0.5, 0.5}

// Controller narrows the field of view while the user moves and centres the remaining view on
// the point the user is moving towards.
type Controller struct {
	curve ResponseCurve
}

// NewController returns a controller using curve. A nil curve disables the vignette.
func NewController(curve ResponseCurve) *Controller {
	return &Controller{curve: curve}
}

// Enabled reports whether a response curve is configured.
func (c *Controller) Enabled() bool {
	return c.curve != nil
}

// Update computes the vignette for the current velocity and camera. It returns false when the
// vignette is not configured, in which case nothing should be rendered.
func (c *Controller) Update(velocity, cameraForward, cameraPosition mgl32.Vec3, projector ScreenProjector) (Parameters, bool) {
	if c.curve == nil {
		return Parameters{}, false
	}
	return Parameters{
		Centre: Centre(velocity, cameraForward, cameraPosition, projector),
		Radius: max(c.curve.Evaluate(velocity.Len()), 0),
	}, true
}

// Centre returns the normalised screen position of a point far along the direction of travel,
// or behind the camera along it when moving backwards. Without motion, or when the point cannot
// be projected, the centre of the screen is returned.
func Centre(velocity, cameraForward, cameraPosition mgl32.Vec3, projector ScreenProjector) mgl32.Vec2 {
	dir := game.SafeNormal(velocity)
	if game.IsNearlyZero(dir) || projector == nil {
		return screenCentre
	}

	var stationary mgl32.Vec3
	if cameraForward.Dot(dir) > 0 {
		stationary = cameraPosition.Add(dir.Mul(stationaryPointDistance))
	} else {
		stationary = cameraPosition.Sub(dir.Mul(stationaryPointDistance))
	}

	screen, ok := projector.WorldToScreen(stationary)
	if !ok {
		return screenCentre
	}
	w, h := projector.ViewportSize()
	if w <= 0 || h <= 0 {
		return screenCentre
	}
	return mgl32.Vec2{
		game.ClampFloat32(screen.X()/float32(w), 0, 1),
		game.ClampFloat32(screen.Y()/float32(h), 0, 1),
	}
}

// Apply pushes params into sink. A nil sink means no vignette material is assigned.
func Apply(sink RenderSink, params Parameters) error {
	if sink == nil {
		return oerror.ErrMissingConfiguration
	}
	sink.SetScalarParameterValue(RadiusParameter, params.Radius)
	sink.SetVectorParameterValue(CentreParameter, mgl32.Vec4{params.Centre.X(), params.Centre.Y(), 0, 1})
	return nil
}
