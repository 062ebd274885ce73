package motion

import "time"

// DefaultProgressDuration is used when a progress trigger is created
// without an explicit duration.
const DefaultProgressDuration = 800 * time.Millisecond

// Progress animates a raw numeric value (a progress ring, a bar fill)
// toward a target on a timing curve. It exposes the animatable value
// directly rather than a style descriptor.
type Progress struct {
	rt       Runtime
	target   float64
	duration time.Duration

	value *Value
	life  lifecycle
}

// NewProgress creates a progress trigger. A non-positive duration falls
// back to DefaultProgressDuration. The value starts at 0.
func NewProgress(rt Runtime, target float64, duration time.Duration) *Progress {
	if duration <= 0 {
		duration = DefaultProgressDuration
	}
	return &Progress{
		rt:       rt,
		target:   target,
		duration: duration,
		value:    NewValue("progress", 0),
	}
}

// Attach starts the value growing from rest toward the initial target.
func (p *Progress) Attach() {
	if !p.life.attach() {
		return
	}
	p.rt.Start(p.value, Timing(p.target, p.duration))
}

// SetTarget retargets the animation. Issues no command if the target is
// unchanged.
func (p *Progress) SetTarget(target float64) {
	if !p.life.active() || target == p.target {
		return
	}
	p.target = target
	p.rt.Start(p.value, Timing(target, p.duration))
}

// Detach marks the trigger dead.
func (p *Progress) Detach() {
	p.life.detach()
}

// Value returns the animatable progress value.
func (p *Progress) Value() *Value {
	return p.value
}
