package transition

import (
	"io"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/vrloco/fade"
	"github.com/oomph-ac/vrloco/oerror"
	"github.com/oomph-ac/vrloco/scheduler"
	"github.com/oomph-ac/vrloco/settings"
	"github.com/oomph-ac/vrloco/teleport"
	"github.com/sirupsen/logrus"
)

// State is a phase of a teleport transition.
type State uint8

const (
	StateIdle State = iota
	StateFadingOut
	StateRelocating
	StateFadingIn
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFadingOut:
		return "fading out"
	case StateRelocating:
		return "relocating"
	case StateFadingIn:
		return "fading in"
	default:
		return "unknown"
	}
}

// Body is the character moved by a teleport.
type Body interface {
	// HalfHeight returns the half-height of the collision capsule. The capsule centre is placed
	// this far above the destination.
	HalfHeight() float32
	SetLocation(mgl32.Vec3)
}

// Config holds the timing and colour of a transition.
type Config struct {
	FadeDuration time.Duration
	FadeColour   mgl32.Vec4
}

// ConfigFromSettings ...
func ConfigFromSettings(s settings.Settings) Config {
	return Config{
		FadeDuration: time.Duration(float64(s.Transition.FadeDuration) * float64(time.Second)),
		FadeColour:   s.Transition.FadeColour.Vec4(),
	}
}

// Machine sequences a teleport: the view fades out, the body is moved to the destination while
// the screen is dark, and the view fades back in. At most one transition runs at a time.
type Machine struct {
	log   *logrus.Logger
	conf  Config
	sched *scheduler.Scheduler

	body        Body
	controllers fade.ControllerSource

	state    State
	snapshot teleport.Destination
	started  time.Duration
	pending  scheduler.Handle
	id       uuid.UUID
}

// New returns an idle machine. controllers may be nil, in which case fades are always skipped. A
// nil logger discards all output.
func New(conf Config, sched *scheduler.Scheduler, body Body, controllers fade.ControllerSource, log *logrus.Logger) *Machine {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Machine{
		log:         log,
		conf:        conf,
		sched:       sched,
		body:        body,
		controllers: controllers,
	}
}

// Commit starts a transition to dest. It does nothing and returns false while a transition is
// already running or when dest is not valid. The destination is copied before anything else
// happens, so later frames cannot change where the body ends up.
func (m *Machine) Commit(dest teleport.Destination) bool {
	if m.state != StateIdle || !dest.Valid {
		return false
	}
	m.snapshot = dest
	m.id = uuid.New()
	m.started = m.sched.Now()
	m.state = StateFadingOut

	m.logger().Debugf("teleport committed to %v", dest.Point)
	m.fade(0, 1)
	m.pending = m.sched.After(m.conf.FadeDuration, m.relocate)
	return true
}

func (m *Machine) relocate() {
	m.state = StateRelocating
	location := m.snapshot.Point.Add(mgl32.Vec3{0, 0, m.body.HalfHeight()})
	m.body.SetLocation(location)
	m.logger().Debugf("body relocated to %v", location)

	m.state = StateFadingIn
	m.fade(1, 0)
	m.pending = m.sched.After(m.conf.FadeDuration, m.finish)
}

func (m *Machine) finish() {
	m.logger().Debugf("teleport finished after %v", m.sched.Now()-m.started)
	m.state, m.pending = StateIdle, 0
}

// Reset cancels the running transition, if any, and returns to idle. The camera fade is stopped
// so the view is not left covered. A body already moved stays where it is.
func (m *Machine) Reset() {
	if m.state == StateIdle {
		return
	}
	m.sched.Cancel(m.pending)
	if m.controllers != nil {
		if cm, ok := m.controllers.ActiveCameraManager(); ok {
			cm.StopCameraFade()
		}
	}
	m.logger().Debugf("teleport cancelled while %v", m.state)
	m.state, m.pending = StateIdle, 0
}

func (m *Machine) fade(from, to float32) {
	if m.controllers != nil {
		if cm, ok := m.controllers.ActiveCameraManager(); ok {
			cm.StartCameraFade(from, to, m.conf.FadeDuration, m.conf.FadeColour)
			return
		}
	}
	m.logger().Debugf("skipping fade %.0f -> %.0f: %v", from, to, oerror.ErrNoActiveController)
}

func (m *Machine) logger() *logrus.Entry {
	return m.log.WithField("teleport", m.id.String())
}

// State returns the current phase.
func (m *Machine) State() State {
	return m.state
}

// Active reports whether a transition is running.
func (m *Machine) Active() bool {
	return m.state != StateIdle
}

// Elapsed returns the time since the running transition was committed, or zero when idle.
func (m *Machine) Elapsed() time.Duration {
	if m.state == StateIdle {
		return 0
	}
	return m.sched.Now() - m.started
}

// Snapshot returns the destination captured by the running transition.
func (m *Machine) Snapshot() (teleport.Destination, bool) {
	if m.state == StateIdle {
		return teleport.Destination{}, false
	}
	return m.snapshot, true
}

// ID returns the identifier of the most recent transition, used to correlate its log lines.
func (m *Machine) ID() uuid.UUID {
	return m.id
}
