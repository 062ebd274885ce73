package motion

import (
	"sync"
	"time"
)

// CelebrationHold is how long the celebration stays visible before the
// delayed fade-out begins.
const CelebrationHold = 1500 * time.Millisecond

// Celebration is a manually fired burst: Celebrate shows the element
// instantly, overshoots its scale with a bouncy spring, and schedules a
// slow fade-out after a fixed hold. The scheduled fade is canceled if the
// trigger detaches first, so it can never write to a destroyed value.
//
// Unlike the other triggers, Celebration is internally synchronized: the
// Clock callback may fire on a different goroutine than the host's events.
type Celebration struct {
	rt    Runtime
	clock Clock

	opacity *Value
	scale   *Value
	style   *Style

	mu         sync.Mutex
	life       lifecycle
	cancelHold func()
}

// NewCelebration creates a celebration trigger. The element starts
// invisible at scale 0.
func NewCelebration(rt Runtime, clock Clock) *Celebration {
	c := &Celebration{
		rt:      rt,
		clock:   clock,
		opacity: NewValue("opacity", 0),
		scale:   NewValue("scale", 0),
	}
	c.style = NewStyle(map[Prop]*Value{
		Opacity: c.opacity,
		Scale:   c.scale,
	})
	return c
}

// Attach initializes the trigger. Nothing animates until Celebrate.
func (c *Celebration) Attach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.life.attach()
}

// Celebrate fires the burst: opacity snaps to 1, scale springs to 1.3 and
// eases back to 1, and a fade to 0 over the slow duration is scheduled
// after CelebrationHold. Re-firing before the hold elapses restarts it.
func (c *Celebration) Celebrate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.life.active() {
		return
	}

	c.rt.Start(c.opacity, Snap(1))
	c.rt.Start(c.scale, Sequence(
		Spring(1.3, SpringBouncy),
		TimingWith(1, TimingNormal),
	))

	if c.cancelHold != nil {
		c.cancelHold()
	}
	c.cancelHold = c.clock.After(CelebrationHold, c.fadeOut)
}

// fadeOut is the deferred reset. It re-checks liveness under the lock:
// the cancel in Detach and a firing timer can race.
func (c *Celebration) fadeOut() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.life.active() {
		return
	}
	c.cancelHold = nil
	c.rt.Start(c.opacity, TimingWith(0, TimingSlow))
}

// Detach cancels any pending fade-out and marks the trigger dead.
func (c *Celebration) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.life.detach() {
		return
	}
	if c.cancelHold != nil {
		c.cancelHold()
		c.cancelHold = nil
	}
}

// Style returns the opacity/scale style descriptor.
func (c *Celebration) Style() *Style {
	return c.style
}
