package scheduler

import (
	"cmp"
	"io"
	"slices"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/vrloco/assert"
	"github.com/oomph-ac/vrloco/oerror"
	"github.com/sirupsen/logrus"
)

// Handle identifies a scheduled callback. The zero Handle never refers to a callback.
type Handle uint64

type timer struct {
	due time.Duration
	fn  func()
}

// Scheduler runs one-shot callbacks after a delay measured in frame time. It is driven by Tick
// from the frame loop and is not safe for concurrent use.
type Scheduler struct {
	log *logrus.Logger

	now    time.Duration
	last   Handle
	timers *orderedmap.OrderedMap[Handle, timer]
}

// New returns a scheduler at time zero. A nil logger discards all output.
func New(log *logrus.Logger) *Scheduler {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Scheduler{
		log:    log,
		timers: orderedmap.NewOrderedMap[Handle, timer](),
	}
}

// After schedules fn to run on the first tick at or after delay from now. Callbacks scheduled
// from within a callback never run in the same tick, even with a zero delay.
func (s *Scheduler) After(delay time.Duration, fn func()) Handle {
	assert.IsTrue(fn != nil, "scheduled callback must not be nil")
	s.last++
	s.timers.Set(s.last, timer{due: s.now + max(delay, 0), fn: fn})
	return s.last
}

// Cancel stops the callback of h from running. It returns false if the callback already ran or
// was cancelled before.
func (s *Scheduler) Cancel(h Handle) bool {
	return s.timers.Delete(h)
}

// Pending reports whether the callback of h has yet to run.
func (s *Scheduler) Pending(h Handle) bool {
	_, ok := s.timers.Get(h)
	return ok
}

// CancelAll cancels every pending callback.
func (s *Scheduler) CancelAll() {
	s.timers = orderedmap.NewOrderedMap[Handle, timer]()
}

// Len returns the number of pending callbacks.
func (s *Scheduler) Len() int {
	return s.timers.Len()
}

// Now returns the frame time accumulated through Tick.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Tick advances the clock by dt and runs every callback that became due, earliest first and in
// scheduling order for equal due times.
func (s *Scheduler) Tick(dt time.Duration) {
	s.now += max(dt, 0)

	var due []Handle
	for el := s.timers.Front(); el != nil; el = el.Next() {
		if el.Value.due <= s.now {
			due = append(due, el.Key)
		}
	}
	slices.SortStableFunc(due, func(a, b Handle) int {
		ta, _ := s.timers.Get(a)
		tb, _ := s.timers.Get(b)
		return cmp.Compare(ta.due, tb.due)
	})

	for _, h := range due {
		// An earlier callback may have cancelled this one.
		t, ok := s.timers.Get(h)
		if !ok {
			continue
		}
		s.timers.Delete(h)
		s.run(h, t.fn)
	}
}

func (s *Scheduler) run(h Handle, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			err := oerror.New("scheduled callback %d panicked: %v", h, r)
			hub := sentry.CurrentHub().Clone()
			hub.Recover(err)
			s.log.Errorf("scheduler: %v", err)
		}
	}()
	fn()
}
