package board

import (
	"errors"
	"sync"
	"testing"
	"time"

	"vitality/internal/core"
	"vitality/internal/sims/life"

	. "github.com/smartystreets/goconvey/convey"
)

type manualTimer struct {
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

func (c *manualClock) after(_ time.Duration, f func()) core.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// tick fires every pending timer, stale ones included.
func (c *manualClock) tick() {
	c.mu.Lock()
	timers := c.timers
	c.timers = nil
	c.mu.Unlock()
	for _, t := range timers {
		t.f()
	}
}

func TestBoard(t *testing.T) {
	Convey("Given a new board", t, func() {
		clock := &manualClock{}
		b, err := New(5, WithTimerFunc(clock.after))
		So(err, ShouldBeNil)
		Reset(b.Close)

		Convey("It starts idle with every cell dead", func() {
			So(b.Running(), ShouldBeFalse)
			So(b.Size(), ShouldEqual, 5)
			So(b.Snapshot(), ShouldResemble, make([]int, 25))
			So(b.Period(), ShouldEqual, core.DefaultPeriod)
		})

		Convey("Toggling twice restores the cell", func() {
			So(b.Toggle(7), ShouldBeNil)
			So(b.Snapshot()[7], ShouldEqual, 1)
			So(b.Toggle(7), ShouldBeNil)
			So(b.Snapshot()[7], ShouldEqual, 0)
		})

		Convey("Toggling outside the grid fails without clamping", func() {
			err := b.Toggle(25)
			So(errors.Is(err, core.ErrIndexOutOfRange), ShouldBeTrue)
			So(b.Frame().Population, ShouldEqual, 0)
		})

		Convey("Snapshots are copies", func() {
			snap := b.Snapshot()
			snap[0] = 42
			So(b.Snapshot()[0], ShouldEqual, 0)
		})

		Convey("With a vertical blinker", func() {
			for _, idx := range []int{7, 12, 17} {
				So(b.Toggle(idx), ShouldBeNil)
			}

			Convey("Running advances one generation per period", func() {
				b.SetRunning(true)
				So(b.Running(), ShouldBeTrue)
				So(b.Generation(), ShouldEqual, 0)

				clock.tick()
				frame := b.Frame()
				So(frame.Generation, ShouldEqual, 1)
				So(frame.Population, ShouldEqual, 3)
				for _, idx := range []int{11, 12, 13} {
					So(frame.Cells[idx], ShouldEqual, 1)
				}

				clock.tick()
				So(b.Generation(), ShouldEqual, 2)
				So(b.Snapshot()[7], ShouldEqual, 1)
			})

			Convey("Starting twice keeps a single timer and stopping ends ticking", func() {
				b.SetRunning(true)
				b.SetRunning(true)
				So(clock.armed(), ShouldEqual, 1)

				b.SetRunning(false)
				So(b.Running(), ShouldBeFalse)
				So(clock.armed(), ShouldEqual, 0)

				before := b.Snapshot()
				clock.tick()
				So(b.Snapshot(), ShouldResemble, before)
				So(b.Generation(), ShouldEqual, 0)
			})

			Convey("Close cancels the pending generation", func() {
				b.SetRunning(true)
				b.Close()
				clock.tick()
				So(b.Generation(), ShouldEqual, 0)
				b.SetRunning(true)
				So(b.Running(), ShouldBeFalse)
			})

			Convey("Manual steps use the same rule", func() {
				So(b.Step(), ShouldBeNil)
				So(b.Snapshot()[12], ShouldEqual, 1)
				So(b.Snapshot()[7], ShouldEqual, 0)
			})

			Convey("Clear resets cells and counters", func() {
				So(b.Step(), ShouldBeNil)
				b.Clear()
				So(b.Generation(), ShouldEqual, 0)
				So(b.Frame().Population, ShouldEqual, 0)
			})
		})

		Convey("Seeding is deterministic", func() {
			b.Seed(11)
			first := b.Snapshot()
			b.Seed(11)
			So(b.Snapshot(), ShouldResemble, first)
			So(b.Generation(), ShouldEqual, 0)
		})
	})

	Convey("Given a non-positive size", t, func() {
		_, err := New(0)
		So(errors.Is(err, core.ErrInvalidSize), ShouldBeTrue)
	})

	Convey("Given the classic rule", t, func() {
		clock := &manualClock{}
		b, err := New(4, WithRule(life.Conway), WithTimerFunc(clock.after))
		So(err, ShouldBeNil)
		for _, idx := range []int{5, 6, 9, 10} {
			So(b.Toggle(idx), ShouldBeNil)
		}
		So(b.Step(), ShouldBeNil)
		So(b.Snapshot()[5], ShouldEqual, 1)
	})
}

func TestBoardConcurrentToggles(t *testing.T) {
	Convey("Toggles racing with a real scheduler keep the grid consistent", t, func() {
		b, err := New(8, WithPeriod(time.Millisecond))
		So(err, ShouldBeNil)
		defer b.Close()

		b.SetRunning(true)
		var wg sync.WaitGroup
		for w := 0; w < 4; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < 200; i++ {
					_ = b.Toggle((w*17 + i) % 64)
					_ = b.Snapshot()
				}
			}(w)
		}
		wg.Wait()
		b.SetRunning(false)

		frame := b.Frame()
		So(len(frame.Cells), ShouldEqual, 64)
		for _, v := range frame.Cells {
			So(v, ShouldBeGreaterThanOrEqualTo, 0)
		}
		So(b.Err(), ShouldBeNil)
	})
}
