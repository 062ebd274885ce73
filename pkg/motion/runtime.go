package motion

import "time"

// Runtime is the external animation engine capability injected into every
// trigger. Start begins executing a command tree against a value,
// replacing any in-flight animation on that value.
//
// Implementations interpolate on their own schedule (a browser client's
// frame loop, a test recorder applying commands synchronously); this
// library never interpolates.
type Runtime interface {
	Start(v *Value, cmd Command)
}

// Clock schedules deferred callbacks. The returned cancel function must be
// safe to call after the callback has fired, and must prevent the callback
// from running if called before.
type Clock interface {
	After(d time.Duration, fn func()) (cancel func())
}

// SystemClock is the wall-clock Clock backed by time.AfterFunc.
type SystemClock struct{}

// After implements Clock.
func (SystemClock) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
