package motion

import "time"

// SlideUpFade slides an element up from a starting offset while fading it
// in. Opacity runs on a timing curve; the vertical offset settles with a
// smooth spring. Both start after the same delay.
type SlideUpFade struct {
	rt       Runtime
	delay    time.Duration
	distance float64

	opacity    *Value
	translateY *Value
	style      *Style
	life       lifecycle
}

// NewSlideUpFade creates a slide-up-fade trigger. The element starts
// transparent, offset down by distance pixels.
func NewSlideUpFade(rt Runtime, delay time.Duration, distance float64) *SlideUpFade {
	s := &SlideUpFade{
		rt:         rt,
		delay:      delay,
		distance:   distance,
		opacity:    NewValue("opacity", 0),
		translateY: NewValue("translateY", distance),
	}
	s.style = NewStyle(map[Prop]*Value{
		Opacity:    s.opacity,
		TranslateY: s.translateY,
	})
	return s
}

// Attach schedules the entrance: after the delay, opacity fades to 1 over
// the normal duration while translateY springs to 0.
func (s *SlideUpFade) Attach() {
	if !s.life.attach() {
		return
	}
	s.rt.Start(s.opacity, Delay(s.delay, TimingWith(1, TimingNormal)))
	s.rt.Start(s.translateY, Delay(s.delay, Spring(0, SpringSmooth)))
}

// Detach marks the trigger dead.
func (s *SlideUpFade) Detach() {
	s.life.detach()
}

// Style returns the opacity/translateY style descriptor.
func (s *SlideUpFade) Style() *Style {
	return s.style
}
