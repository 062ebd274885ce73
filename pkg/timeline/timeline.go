// Package timeline records the command streams triggers issue so sessions
// can be replayed, diffed, or attached to bug reports. A Recorder sits in
// front of any Runtime; the resulting Timeline is plain JSON.
package timeline

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vango-dev/motion/pkg/motion"
)

// ErrUnknownOp is returned when decoding a timeline with an unrecognized
// command op.
var ErrUnknownOp = errors.New("timeline: unknown command op")

// Command is the JSON form of one animation command node.
type Command struct {
	Op         string    `json:"op"`
	Target     float64   `json:"target,omitempty"`
	DurationMs int64     `json:"durationMs,omitempty"`
	Damping    float64   `json:"damping,omitempty"`
	Stiffness  float64   `json:"stiffness,omitempty"`
	WaitMs     int64     `json:"waitMs,omitempty"`
	Steps      []Command `json:"steps,omitempty"`
	Next       *Command  `json:"next,omitempty"`
}

// FromMotion converts a command tree to its JSON form.
func FromMotion(cmd motion.Command) Command {
	switch c := cmd.(type) {
	case motion.SnapCommand:
		return Command{Op: "snap", Target: c.Target}
	case motion.TimingCommand:
		return Command{Op: "timing", Target: c.Target, DurationMs: c.Duration.Milliseconds()}
	case motion.SpringCommand:
		return Command{Op: "spring", Target: c.Target, Damping: c.Preset.Damping, Stiffness: c.Preset.Stiffness}
	case motion.SequenceCommand:
		steps := make([]Command, 0, len(c.Steps))
		for _, step := range c.Steps {
			steps = append(steps, FromMotion(step))
		}
		return Command{Op: "sequence", Steps: steps}
	case motion.DelayCommand:
		next := FromMotion(c.Next)
		return Command{Op: "delay", WaitMs: c.Wait.Milliseconds(), Next: &next}
	default:
		return Command{Op: "unknown"}
	}
}

// ToMotion converts the JSON form back to a command tree.
func (c Command) ToMotion() (motion.Command, error) {
	switch c.Op {
	case "snap":
		return motion.Snap(c.Target), nil
	case "timing":
		return motion.Timing(c.Target, time.Duration(c.DurationMs)*time.Millisecond), nil
	case "spring":
		preset := motion.SpringPreset{Damping: c.Damping, Stiffness: c.Stiffness}
		return motion.Spring(c.Target, preset), nil
	case "sequence":
		steps := make([]motion.Command, 0, len(c.Steps))
		for _, step := range c.Steps {
			cmd, err := step.ToMotion()
			if err != nil {
				return nil, err
			}
			steps = append(steps, cmd)
		}
		return motion.Sequence(steps...), nil
	case "delay":
		if c.Next == nil {
			return nil, fmt.Errorf("%w: delay without next", ErrUnknownOp)
		}
		next, err := c.Next.ToMotion()
		if err != nil {
			return nil, err
		}
		return motion.Delay(time.Duration(c.WaitMs)*time.Millisecond, next), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, c.Op)
	}
}

// Frame is one recorded command with its elapsed offset from the start of
// the recording.
type Frame struct {
	AtMs    int64   `json:"atMs"`
	Value   string  `json:"value"`
	Command Command `json:"command"`
}

// Timeline is a full recording.
type Timeline struct {
	Name       string    `json:"name"`
	RecordedAt time.Time `json:"recordedAt"`
	Frames     []Frame   `json:"frames"`
}

// Duration returns the offset of the last recorded frame.
func (t *Timeline) Duration() time.Duration {
	if len(t.Frames) == 0 {
		return 0
	}
	return time.Duration(t.Frames[len(t.Frames)-1].AtMs) * time.Millisecond
}

// Recorder implements motion.Runtime by recording every command and
// forwarding it to an optional inner runtime. Safe for concurrent use.
type Recorder struct {
	name  string
	inner motion.Runtime
	now   func() time.Time

	mu     sync.Mutex
	start  time.Time
	frames []Frame
}

// NewRecorder creates a recorder named name. inner may be nil to record
// without playing anything.
func NewRecorder(name string, inner motion.Runtime) *Recorder {
	return &Recorder{name: name, inner: inner, now: time.Now}
}

// Start implements motion.Runtime.
func (r *Recorder) Start(v *motion.Value, cmd motion.Command) {
	now := r.now()

	r.mu.Lock()
	if r.start.IsZero() {
		r.start = now
	}
	r.frames = append(r.frames, Frame{
		AtMs:    now.Sub(r.start).Milliseconds(),
		Value:   v.Name(),
		Command: FromMotion(cmd),
	})
	r.mu.Unlock()

	if r.inner != nil {
		r.inner.Start(v, cmd)
	}
}

// Timeline returns a snapshot of the recording so far.
func (r *Recorder) Timeline() *Timeline {
	r.mu.Lock()
	defer r.mu.Unlock()

	frames := make([]Frame, len(r.frames))
	copy(frames, r.frames)
	return &Timeline{
		Name:       r.name,
		RecordedAt: r.start,
		Frames:     frames,
	}
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}
