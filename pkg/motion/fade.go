package motion

import "time"

// FadeIn fades an element's opacity from 0 to 1 on attach, after an
// optional delay.
type FadeIn struct {
	rt    Runtime
	delay time.Duration

	opacity *Value
	style   *Style
	life    lifecycle
}

// NewFadeIn creates a fade-in trigger. The element starts fully
// transparent; Attach schedules the fade.
func NewFadeIn(rt Runtime, delay time.Duration) *FadeIn {
	f := &FadeIn{
		rt:      rt,
		delay:   delay,
		opacity: NewValue("opacity", 0),
	}
	f.style = NewStyle(map[Prop]*Value{Opacity: f.opacity})
	return f
}

// Attach schedules the fade: delay, then a timing transition of opacity
// to 1 over the normal duration.
func (f *FadeIn) Attach() {
	if !f.life.attach() {
		return
	}
	f.rt.Start(f.opacity, Delay(f.delay, TimingWith(1, TimingNormal)))
}

// Detach marks the trigger dead.
func (f *FadeIn) Detach() {
	f.life.detach()
}

// Style returns the opacity style descriptor.
func (f *FadeIn) Style() *Style {
	return f.style
}
