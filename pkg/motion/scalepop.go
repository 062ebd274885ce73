package motion

// ScalePop pops an element's scale when its trigger flips true: an instant
// reset to 0.8 followed by a bouncy spring back to 1. While the trigger is
// false the scale rests at 1 and no command is issued.
type ScalePop struct {
	rt      Runtime
	trigger bool

	scale *Value
	style *Style
	life  lifecycle
}

// NewScalePop creates a scale-pop trigger with the given initial trigger
// state.
func NewScalePop(rt Runtime, trigger bool) *ScalePop {
	s := &ScalePop{
		rt:      rt,
		trigger: trigger,
		scale:   NewValue("scale", 1),
	}
	s.style = NewStyle(map[Prop]*Value{Scale: s.scale})
	return s
}

// Attach pops immediately if the trigger is already true.
func (s *ScalePop) Attach() {
	if !s.life.attach() {
		return
	}
	if s.trigger {
		s.pop()
	}
}

// SetTrigger pops on a false→true transition. A true→false transition
// records the state but issues nothing; the scale stays where the last
// pop left it (resting at 1).
func (s *ScalePop) SetTrigger(trigger bool) {
	if !s.life.active() || trigger == s.trigger {
		return
	}
	s.trigger = trigger
	if trigger {
		s.pop()
	}
}

func (s *ScalePop) pop() {
	s.rt.Start(s.scale, Sequence(
		Snap(0.8),
		Spring(1, SpringBouncy),
	))
}

// Detach marks the trigger dead.
func (s *ScalePop) Detach() {
	s.life.detach()
}

// Style returns the scale style descriptor.
func (s *ScalePop) Style() *Style {
	return s.style
}
