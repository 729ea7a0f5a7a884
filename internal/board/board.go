// Package board is the handle UI and control collaborators hold on a running
// simulation. It serializes every read and mutation of the grid, so manual
// toggles and scheduled generations never interleave.
package board

import (
	"fmt"
	"sync"
	"time"

	"vitality/internal/core"
	"vitality/internal/sims/life"
)

// Frame is a point-in-time view of the board, suitable for publishing.
type Frame struct {
	Size       int    `json:"size"`
	Generation uint64 `json:"generation"`
	Running    bool   `json:"running"`
	Population int    `json:"population"`
	Cells      []int  `json:"cells"`
}

// Board owns a grid and the scheduler that advances it.
type Board struct {
	mu    sync.Mutex
	grid  *core.Grid
	rule  core.Rule
	gen   uint64
	sched *core.Scheduler
}

type settings struct {
	period    time.Duration
	rule      core.Rule
	schedOpts []core.SchedulerOption
}

// Option configures a Board.
type Option func(*settings)

// WithPeriod sets the delay between scheduled generations.
func WithPeriod(d time.Duration) Option {
	return func(s *settings) { s.period = d }
}

// WithRule replaces the vitality rule.
func WithRule(r core.Rule) Option {
	return func(s *settings) {
		if r != nil {
			s.rule = r
		}
	}
}

// WithTimerFunc replaces the scheduler's timer source.
func WithTimerFunc(f core.TimerFunc) Option {
	return func(s *settings) { s.schedOpts = append(s.schedOpts, core.WithTimerFunc(f)) }
}

// WithErrorHandler is called when a scheduled generation fails and the
// board stops running.
func WithErrorHandler(f func(error)) Option {
	return func(s *settings) { s.schedOpts = append(s.schedOpts, core.WithErrorHandler(f)) }
}

// New creates an idle size×size board with every cell dead.
func New(size int, opts ...Option) (*Board, error) {
	grid, err := core.NewGrid(size)
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}
	s := settings{period: core.DefaultPeriod, rule: life.Vitality}
	for _, opt := range opts {
		opt(&s)
	}
	b := &Board{grid: grid, rule: s.rule}
	b.sched = core.NewScheduler(s.period, b.Step, s.schedOpts...)
	return b, nil
}

// Size returns the edge length of the grid.
func (b *Board) Size() int { return b.grid.Size() }

// Period returns the delay between scheduled generations.
func (b *Board) Period() time.Duration { return b.sched.Period() }

// Toggle flips the cell at index between dead and alive.
func (b *Board) Toggle(index int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.Toggle(index)
}

// Snapshot returns a copy of the cells in row-major order.
func (b *Board) Snapshot() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.Snapshot()
}

// Frame returns the cells together with the board's counters.
func (b *Board) Frame() Frame {
	running := b.Running()
	b.mu.Lock()
	defer b.mu.Unlock()
	return Frame{
		Size:       b.grid.Size(),
		Generation: b.gen,
		Running:    running,
		Population: b.grid.Population(),
		Cells:      b.grid.Snapshot(),
	}
}

// Step advances the board by one generation.
func (b *Board) Step() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	next, err := life.NextGenerationWith(b.grid, b.rule)
	if err != nil {
		return fmt.Errorf("generation %d: %w", b.gen+1, err)
	}
	if err := b.grid.Replace(next); err != nil {
		return fmt.Errorf("generation %d: %w", b.gen+1, err)
	}
	b.gen++
	return nil
}

// SetRunning starts or stops periodic generations. Repeated calls with the
// same value have no further effect.
func (b *Board) SetRunning(running bool) {
	if running {
		b.sched.Start()
		return
	}
	b.sched.Stop()
}

// Running reports whether generations are being scheduled.
func (b *Board) Running() bool { return b.sched.State() == core.Running }

// Err returns the error that last stopped the board, if any.
func (b *Board) Err() error { return b.sched.Err() }

// Generation returns the number of generations computed since the last
// Clear or Seed.
func (b *Board) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gen
}

// Seed replaces the grid with a random 0/1 pattern derived from seed.
func (b *Board) Seed(seed int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	core.SeedGrid(b.grid, seed)
	b.gen = 0
}

// Clear kills every cell.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grid.Clear()
	b.gen = 0
}

// Close releases the scheduler's timer. The board can still be read and
// toggled but never runs again.
func (b *Board) Close() {
	b.sched.Close()
}
