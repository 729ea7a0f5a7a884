package core

import (
	"log"
	"sync"
	"time"
)

// DefaultPeriod is the delay between generations when none is configured.
const DefaultPeriod = time.Second

// State is the scheduler's run state.
type State int

const (
	// Idle schedulers hold no timer.
	Idle State = iota
	// Running schedulers hold exactly one pending timer.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Timer is the cancellable handle returned by a TimerFunc. *time.Timer
// satisfies it.
type Timer interface {
	Stop() bool
}

// TimerFunc arms f to run once after d.
type TimerFunc func(d time.Duration, f func()) Timer

func afterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Scheduler calls a step function once per period while running. Each fire
// re-arms a single one-shot timer, so a slow step delays the next one rather
// than piling up ticks.
type Scheduler struct {
	mu sync.Mutex

	period  time.Duration
	step    func() error
	after   TimerFunc
	onError func(error)

	state  State
	timer  Timer
	epoch  uint64
	err    error
	closed bool
}

// SchedulerOption customises a Scheduler.
type SchedulerOption func(*Scheduler)

// WithTimerFunc replaces time.AfterFunc as the timer source.
func WithTimerFunc(f TimerFunc) SchedulerOption {
	return func(s *Scheduler) {
		if f != nil {
			s.after = f
		}
	}
}

// WithErrorHandler registers a callback for a step failure. It runs after
// the scheduler has already halted.
func WithErrorHandler(f func(error)) SchedulerOption {
	return func(s *Scheduler) { s.onError = f }
}

// NewScheduler constructs an idle scheduler. Non-positive periods fall back
// to DefaultPeriod.
func NewScheduler(period time.Duration, step func() error, opts ...SchedulerOption) *Scheduler {
	if period <= 0 {
		period = DefaultPeriod
	}
	s := &Scheduler{period: period, step: step, after: afterFunc}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Period returns the delay between generations.
func (s *Scheduler) Period() time.Duration { return s.period }

// State reports whether the scheduler is idle or running.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the step error that last halted the scheduler, if any. It is
// cleared by the next Start.
func (s *Scheduler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Start arms the first step one full period from now. Calling Start on a
// running or closed scheduler does nothing.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state == Running {
		return
	}
	s.state = Running
	s.err = nil
	s.arm()
}

// Stop cancels the pending step. Once Stop returns no further step runs
// until the next Start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.halt()
}

// Close stops the scheduler for good.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.halt()
	s.closed = true
}

func (s *Scheduler) arm() {
	s.epoch++
	epoch := s.epoch
	s.timer = s.after(s.period, func() { s.fire(epoch) })
}

func (s *Scheduler) halt() {
	if s.state == Idle {
		return
	}
	s.state = Idle
	s.epoch++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// fire runs one step. Timers armed before the latest Stop carry a stale
// epoch and are dropped.
func (s *Scheduler) fire(epoch uint64) {
	s.mu.Lock()
	if s.state != Running || epoch != s.epoch {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	if err := s.step(); err != nil {
		s.err = err
		s.halt()
		onError := s.onError
		s.mu.Unlock()
		log.Printf("scheduler: halted after failed step: %v", err)
		if onError != nil {
			onError(err)
		}
		return
	}
	s.arm()
	s.mu.Unlock()
}
