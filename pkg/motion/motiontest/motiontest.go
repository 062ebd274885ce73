// Package motiontest provides test doubles for the motion runtime: a
// Recorder that captures every command a trigger issues, and a ManualClock
// whose time only advances when the test says so.
package motiontest

import (
	"sync"
	"testing"
	"time"

	"github.com/vango-dev/motion/pkg/motion"
)

// Record is one captured Start call.
type Record struct {
	Value   *motion.Value
	Command motion.Command
}

// Recorder implements motion.Runtime by recording commands instead of
// interpolating. Snap commands (and leading snaps inside sequences) are
// applied to the value synchronously, since they carry no interpolation.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start implements motion.Runtime.
func (r *Recorder) Start(v *motion.Value, cmd motion.Command) {
	r.mu.Lock()
	r.records = append(r.records, Record{Value: v, Command: cmd})
	r.mu.Unlock()

	applySnaps(v, cmd)
}

// applySnaps applies the instantaneous prefix of a command tree.
func applySnaps(v *motion.Value, cmd motion.Command) {
	switch c := cmd.(type) {
	case motion.SnapCommand:
		v.Set(c.Target)
	case motion.SequenceCommand:
		for _, step := range c.Steps {
			snap, ok := step.(motion.SnapCommand)
			if !ok {
				return
			}
			v.Set(snap.Target)
		}
	}
}

// Records returns a copy of all captured records in issue order.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// CommandsFor returns the commands issued against v, in issue order.
func (r *Recorder) CommandsFor(v *motion.Value) []motion.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []motion.Command
	for _, rec := range r.records {
		if rec.Value == v {
			out = append(out, rec.Command)
		}
	}
	return out
}

// Len returns the number of captured records.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Reset discards all captured records.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}

// RequireLen fails the test unless exactly n commands were recorded.
func (r *Recorder) RequireLen(t *testing.T, n int) {
	t.Helper()
	if got := r.Len(); got != n {
		t.Fatalf("expected %d recorded commands, got %d: %v", n, got, r.Records())
	}
}

// manualTimer is one pending ManualClock callback.
type manualTimer struct {
	due      time.Duration
	fn       func()
	canceled bool
}

// ManualClock implements motion.Clock with explicitly advanced time.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

// NewManualClock creates a clock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// After implements motion.Clock. The callback fires during an Advance call
// that reaches its due time. The returned cancel is safe to call more than
// once and after firing.
func (c *ManualClock) After(d time.Duration, fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	timer := &manualTimer{due: c.now + d, fn: fn}
	c.timers = append(c.timers, timer)

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		timer.canceled = true
	}
}

// Advance moves time forward and fires due timers in due order.
// Callbacks run without the clock lock held, so they may schedule again.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	now := c.now
	c.mu.Unlock()

	for {
		fn := c.popDue(now)
		if fn == nil {
			return
		}
		fn()
	}
}

// popDue removes and returns the earliest due, uncanceled timer callback.
func (c *ManualClock) popDue(now time.Duration) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	best := -1
	for i, t := range c.timers {
		if t.canceled || t.due > now {
			continue
		}
		if best < 0 || t.due < c.timers[best].due {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	fn := c.timers[best].fn
	c.timers = append(c.timers[:best], c.timers[best+1:]...)
	return fn
}

// Pending returns the number of scheduled, uncanceled timers.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.canceled {
			n++
		}
	}
	return n
}
