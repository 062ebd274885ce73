package motion

import "github.com/vango-dev/motion/pkg/reactive"

// Trigger is the common lifecycle of every state-transition trigger.
// Attach initializes the trigger's values on first render; Detach marks
// the trigger dead, cancels any pending timers, and makes all further
// events no-ops.
type Trigger interface {
	Attach()
	Detach()
}

// Mount attaches a trigger and registers its Detach as an owner cleanup,
// so disposing the owner (unmounting the host element) tears the trigger
// down automatically.
func Mount(owner *reactive.Owner, t Trigger) {
	t.Attach()
	owner.OnCleanup(t.Detach)
}

// lifecycle tracks a trigger's phase. Attach is one-shot: a detached
// trigger cannot be re-attached, matching the host element's lifetime.
type lifecycle struct {
	attached bool
	detached bool
}

// attach transitions to attached. Returns false if already attached or dead.
func (l *lifecycle) attach() bool {
	if l.attached || l.detached {
		return false
	}
	l.attached = true
	return true
}

// active reports whether events should be processed.
func (l *lifecycle) active() bool {
	return l.attached && !l.detached
}

// detach marks the trigger dead. Returns false if it already was.
func (l *lifecycle) detach() bool {
	if l.detached {
		return false
	}
	l.detached = true
	return true
}
