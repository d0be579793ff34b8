package player

import (
	"fmt"
	"io"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/vrloco/fade"
	"github.com/oomph-ac/vrloco/game"
	"github.com/oomph-ac/vrloco/scheduler"
	"github.com/oomph-ac/vrloco/settings"
	"github.com/oomph-ac/vrloco/spatial"
	"github.com/oomph-ac/vrloco/spline"
	"github.com/oomph-ac/vrloco/teleport"
	"github.com/oomph-ac/vrloco/transition"
	"github.com/oomph-ac/vrloco/vignette"
	"github.com/sirupsen/logrus"
)

// Marker is the destination marker shown where a teleport would land.
type Marker struct {
	Location mgl32.Vec3
	Visible  bool
}

// Character is a VR character: a capsule body with a tracked headset and right motion
// controller. It walks from analogue input and teleports to where the controller is aimed.
type Character struct {
	log  *logrus.Logger
	conf settings.Settings
	Dbg  *Debugger

	h Handler

	pose     Pose
	input    mgl32.Vec3
	velocity mgl32.Vec3

	controller *Controller

	sched      *scheduler.Scheduler
	corrector  OffsetCorrector
	resolver   *teleport.Resolver
	visualizer *spline.Visualizer
	vignette   *vignette.Controller
	transition *transition.Machine

	projector vignette.ScreenProjector
	sink      vignette.RenderSink

	path        teleport.PredictedPath
	destination teleport.Destination
	resolveErr  error
	marker      Marker

	vignetteParams vignette.Parameters
	vignetteActive bool
}

var (
	_ transition.Body       = (*Character)(nil)
	_ fade.ControllerSource = (*Character)(nil)
)

// New returns a character standing with its capsule centre at location, resolving teleports
// against query. A nil logger discards all output.
func New(log *logrus.Logger, conf settings.Settings, query spatial.Adapter, location mgl32.Vec3) (*Character, error) {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	resolver, err := teleport.NewResolverFromSettings(conf, query)
	if err != nil {
		return nil, err
	}

	c := &Character{
		log:  log,
		conf: conf,
		Dbg:  NewDebugger(log, conf),
		h:    NopHandler{},

		pose: Pose{
			Body:           location,
			TrackingOrigin: mgl32.Vec3{0, 0, -conf.Character.HalfHeight},
			Head:           game.IdentityTransform(),
			RightHand:      game.IdentityTransform(),
		},

		sched:      scheduler.New(log),
		resolver:   resolver,
		visualizer: spline.NewVisualizer(),
		vignette:   vignette.NewController(vignette.CurveFromSettings(conf)),
	}
	c.transition = transition.New(transition.ConfigFromSettings(conf), c.sched, c, c, log)
	return c, nil
}

// Handle sets the handler of the character. A nil handler resets it to a NopHandler.
func (c *Character) Handle(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	c.h = h
}

// SetProjector sets the projector used to centre the vignette.
func (c *Character) SetProjector(p vignette.ScreenProjector) {
	c.projector = p
}

// SetRenderSink sets the material receiving the vignette parameters. A nil sink disables the
// vignette rendering.
func (c *Character) SetRenderSink(sink vignette.RenderSink) {
	c.sink = sink
}

// Possess binds a player controller to the character.
func (c *Character) Possess(ctrl *Controller) {
	c.controller = ctrl
}

// Unpossess unbinds the player controller.
func (c *Character) Unpossess() {
	c.controller = nil
}

// ActiveCameraManager ...
func (c *Character) ActiveCameraManager() (fade.CameraManager, bool) {
	if c.controller == nil {
		return nil, false
	}
	return c.controller.camera, true
}

// SetTracking updates the tracked poses of the headset and right motion controller, both
// relative to the tracking origin.
func (c *Character) SetTracking(head, rightHand game.Transform) {
	c.pose.Head, c.pose.RightHand = head, rightHand
}

// Tick runs a single frame of dt.
func (c *Character) Tick(dt time.Duration) {
	if c.controller != nil {
		c.controller.camera.Tick(dt)
	}
	c.sched.Tick(dt)

	c.walk(dt)
	if offset := c.corrector.Correct(&c.pose); offset != (mgl32.Vec3{}) {
		c.Dbg.Notify(DebugModeMovement, true, "corrected body by %v", game.RoundVec32(offset, 2))
	}

	c.updateDestination()
	c.updateVignette()
	c.h.OnTick(c)
}

// BeginTeleport commits to the destination resolved in the most recent frame. It returns false
// when there is no valid destination or a teleport is already running.
func (c *Character) BeginTeleport() bool {
	if !c.destination.Valid || c.transition.Active() {
		return false
	}
	if !c.h.HandleTeleport(c, c.destination) {
		c.Dbg.Notify(DebugModeTransition, true, "teleport to %v cancelled by handler", c.destination.Point)
		return false
	}
	return c.transition.Commit(c.destination)
}

// Destroy cancels everything pending on the character.
func (c *Character) Destroy() {
	c.transition.Reset()
	c.sched.CancelAll()
	c.visualizer.Clear()
	c.marker.Visible = false
}

func (c *Character) updateDestination() {
	if c.transition.Active() {
		c.path, c.destination, c.resolveErr = nil, teleport.Destination{}, nil
	} else {
		c.path, c.destination, c.resolveErr = c.resolver.Resolve(teleport.AimFromTransform(c.pose.Hand()))
	}

	if !c.destination.Valid {
		c.marker.Visible = false
		c.visualizer.Clear()
		c.Dbg.Notify(DebugModeTeleport, c.resolveErr != nil, "no destination: %v", c.resolveErr)
		return
	}
	c.marker = Marker{Location: c.destination.Point, Visible: true}
	c.visualizer.Update(c.path, c.pose.Hand())
	c.Dbg.Notify(DebugModeTeleport, true, "destination %v (%d path points)", game.RoundVec32(c.destination.Point, 1), len(c.path))
}

func (c *Character) updateVignette() {
	cam := c.pose.Camera()
	c.vignetteParams, c.vignetteActive = c.vignette.Update(c.velocity, cam.Forward(), cam.Location, c.projector)
	if !c.vignetteActive {
		return
	}
	if err := vignette.Apply(c.sink, c.vignetteParams); err != nil {
		c.Dbg.Notify(DebugModeVignette, true, "vignette not rendered: %v", err)
		return
	}
	c.Dbg.Notify(DebugModeVignette, true, "radius=%.2f centre=%v", c.vignetteParams.Radius, c.vignetteParams.Centre)
}

// HalfHeight ...
func (c *Character) HalfHeight() float32 {
	return c.conf.Character.HalfHeight
}

// SetLocation moves the capsule centre to l.
func (c *Character) SetLocation(l mgl32.Vec3) {
	c.pose.Body = l
}

// Location returns the location of the capsule centre.
func (c *Character) Location() mgl32.Vec3 {
	return c.pose.Body
}

// Pose returns the tracked state of the character.
func (c *Character) Pose() Pose {
	return c.pose
}

// Camera returns the world transform of the headset camera.
func (c *Character) Camera() game.Transform {
	return c.pose.Camera()
}

// Velocity returns the walking velocity of the last frame.
func (c *Character) Velocity() mgl32.Vec3 {
	return c.velocity
}

// Destination returns the destination resolved in the last frame along with the reason it is
// invalid, if it is.
func (c *Character) Destination() (teleport.Destination, error) {
	return c.destination, c.resolveErr
}

// Path returns the predicted teleport path of the last frame.
func (c *Character) Path() teleport.PredictedPath {
	return c.path
}

// Marker returns the destination marker.
func (c *Character) Marker() Marker {
	return c.marker
}

// Spline returns the teleport path spline, local to the right motion controller.
func (c *Character) Spline() *spline.Spline {
	return c.visualizer.Spline()
}

// Vignette returns the vignette parameters of the last frame. It returns false when the vignette
// is not configured.
func (c *Character) Vignette() (vignette.Parameters, bool) {
	return c.vignetteParams, c.vignetteActive
}

// TransitionState returns the phase of the running teleport.
func (c *Character) TransitionState() transition.State {
	return c.transition.State()
}

// Controller returns the possessing player controller, or nil.
func (c *Character) Controller() *Controller {
	return c.controller
}
