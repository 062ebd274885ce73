package motion

import "time"

const (
	// DefaultStaggerDelay is the per-item delay step for staggered entries.
	DefaultStaggerDelay = 50 * time.Millisecond

	// staggerStartOffset is the starting translateY for staggered entries.
	staggerStartOffset = 15
)

// StaggeredEntry is the list-item variant of SlideUpFade: item index i
// starts after i × delay, so a list cascades in top to bottom.
type StaggeredEntry struct {
	rt    Runtime
	index int
	delay time.Duration

	opacity    *Value
	translateY *Value
	style      *Style
	life       lifecycle
}

// NewStaggeredEntry creates a staggered entry trigger for the item at
// index. A non-positive delay falls back to DefaultStaggerDelay.
func NewStaggeredEntry(rt Runtime, index int, delay time.Duration) *StaggeredEntry {
	if delay <= 0 {
		delay = DefaultStaggerDelay
	}
	s := &StaggeredEntry{
		rt:         rt,
		index:      index,
		delay:      delay,
		opacity:    NewValue("opacity", 0),
		translateY: NewValue("translateY", staggerStartOffset),
	}
	s.style = NewStyle(map[Prop]*Value{
		Opacity:    s.opacity,
		TranslateY: s.translateY,
	})
	return s
}

// Attach schedules the entrance with an effective delay of index × delay.
func (s *StaggeredEntry) Attach() {
	if !s.life.attach() {
		return
	}
	wait := time.Duration(s.index) * s.delay
	s.rt.Start(s.opacity, Delay(wait, TimingWith(1, TimingNormal)))
	s.rt.Start(s.translateY, Delay(wait, Spring(0, SpringSmooth)))
}

// Detach marks the trigger dead.
func (s *StaggeredEntry) Detach() {
	s.life.detach()
}

// Style returns the opacity/translateY style descriptor.
func (s *StaggeredEntry) Style() *Style {
	return s.style
}
