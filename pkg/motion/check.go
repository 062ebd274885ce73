package motion

import "time"

// checkOvershootDuration is the length of the scale overshoot step when a
// checkmark toggles on.
const checkOvershootDuration = 100 * time.Millisecond

// CheckToggle animates a checkmark. Toggling on overshoots the scale to
// 1.2 before a bouncy spring settles it at 1, while the rotation snaps
// level; toggling off shrinks and tilts the mark away quickly.
type CheckToggle struct {
	rt      Runtime
	checked bool

	scale  *Value
	rotate *Value
	style  *Style
	life   lifecycle
}

// NewCheckToggle creates a check toggle resting in the given state:
// checked marks rest at scale 1 / rotate 0, unchecked at scale 0 /
// rotate -45.
func NewCheckToggle(rt Runtime, checked bool) *CheckToggle {
	c := &CheckToggle{
		rt:      rt,
		checked: checked,
	}
	if checked {
		c.scale = NewValue("scale", 1)
		c.rotate = NewValue("rotate", 0)
	} else {
		c.scale = NewValue("scale", 0)
		c.rotate = NewValue("rotate", -45)
	}
	c.style = NewStyle(map[Prop]*Value{
		Scale:  c.scale,
		Rotate: c.rotate,
	})
	return c
}

// Attach initializes the trigger. No command is issued; the values already
// rest in the initial state.
func (c *CheckToggle) Attach() {
	c.life.attach()
}

// SetChecked animates the toggle. Issues no command if the state is
// unchanged.
func (c *CheckToggle) SetChecked(checked bool) {
	if !c.life.active() || checked == c.checked {
		return
	}
	c.checked = checked

	if checked {
		c.rt.Start(c.scale, Sequence(
			Timing(1.2, checkOvershootDuration),
			Spring(1, SpringBouncy),
		))
		c.rt.Start(c.rotate, Spring(0, SpringSnappy))
		return
	}

	c.rt.Start(c.scale, TimingWith(0, TimingFast))
	c.rt.Start(c.rotate, TimingWith(-45, TimingFast))
}

// Detach marks the trigger dead.
func (c *CheckToggle) Detach() {
	c.life.detach()
}

// Style returns the scale/rotate style descriptor.
func (c *CheckToggle) Style() *Style {
	return c.style
}
