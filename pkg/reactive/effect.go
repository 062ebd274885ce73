package reactive

import (
	"sync"
	"sync/atomic"
)

// Effect is a reactive side effect that re-runs when its dependencies
// change. Dependencies are tracked automatically during execution.
//
// There is no deferred effect queue in this library: an effect re-runs
// synchronously on the goroutine that wrote the triggering signal. The
// effect function may return a Cleanup that runs before the next re-run
// and when the effect is disposed.
type Effect struct {
	id uint64

	// fn is the effect function.
	fn func() Cleanup

	// cleanup is the cleanup from the last run.
	cleanup Cleanup

	// sources are the signals/memos this effect depends on.
	sources   []*source
	sourcesMu sync.Mutex

	// runMu serializes runs so concurrent MarkDirty calls don't interleave.
	runMu sync.Mutex

	// disposed indicates the effect has been disposed.
	disposed atomic.Bool
}

// NewEffect creates and immediately runs an effect owned by owner.
// The owner may be nil, in which case the effect is never auto-disposed.
func NewEffect(owner *Owner, fn func() Cleanup) *Effect {
	e := &Effect{
		id: nextID(),
		fn: fn,
	}

	if owner != nil {
		owner.registerEffect(e)
	}

	e.run()
	return e
}

// MarkDirty re-runs the effect.
// Implements the Listener interface.
func (e *Effect) MarkDirty() {
	if e.disposed.Load() {
		return
	}
	e.run()
}

// ID returns the unique identifier for this effect.
// Implements the Listener interface.
func (e *Effect) ID() uint64 {
	return e.id
}

// run executes the effect function with dependency tracking.
func (e *Effect) run() {
	e.runMu.Lock()
	defer e.runMu.Unlock()

	if e.disposed.Load() {
		return
	}

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	// Detach from old sources before re-tracking.
	e.sourcesMu.Lock()
	for _, src := range e.sources {
		src.detach(e)
	}
	e.sources = e.sources[:0]
	e.sourcesMu.Unlock()

	old := setCurrentListener(e)
	e.cleanup = e.fn()
	setCurrentListener(old)
}

// addSource records a source dependency.
// Implements the sourceTracker interface.
func (e *Effect) addSource(src *source) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	for _, s := range e.sources {
		if s == src {
			return
		}
	}
	e.sources = append(e.sources, src)
}

// dispose runs the final cleanup and unsubscribes from all sources.
func (e *Effect) dispose() {
	if e.disposed.Swap(true) {
		return
	}

	e.runMu.Lock()
	defer e.runMu.Unlock()

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, src := range e.sources {
		src.detach(e)
	}
	e.sources = nil
	e.sourcesMu.Unlock()
}

var _ sourceTracker = (*Effect)(nil)
