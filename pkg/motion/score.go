package motion

import "time"

// DefaultScoreDuration is used when a score counter is created without an
// explicit duration.
const DefaultScoreDuration = 1000 * time.Millisecond

// ScoreCounter counts a displayed number up (or down) to a target score on
// a timing curve. The renderer typically rounds the raw value per frame.
type ScoreCounter struct {
	rt       Runtime
	target   float64
	duration time.Duration

	value *Value
	life  lifecycle
}

// NewScoreCounter creates a score counter. A non-positive duration falls
// back to DefaultScoreDuration. The displayed value starts at 0.
func NewScoreCounter(rt Runtime, target float64, duration time.Duration) *ScoreCounter {
	if duration <= 0 {
		duration = DefaultScoreDuration
	}
	return &ScoreCounter{
		rt:       rt,
		target:   target,
		duration: duration,
		value:    NewValue("score", 0),
	}
}

// Attach starts counting from rest toward the initial target.
func (s *ScoreCounter) Attach() {
	if !s.life.attach() {
		return
	}
	s.rt.Start(s.value, Timing(s.target, s.duration))
}

// SetTarget retargets the counter. Issues no command if the target is
// unchanged.
func (s *ScoreCounter) SetTarget(target float64) {
	if !s.life.active() || target == s.target {
		return
	}
	s.target = target
	s.rt.Start(s.value, Timing(target, s.duration))
}

// Detach marks the trigger dead.
func (s *ScoreCounter) Detach() {
	s.life.detach()
}

// Value returns the animatable display value.
func (s *ScoreCounter) Value() *Value {
	return s.value
}
