package reactive

import "sync/atomic"

// Listener is anything that can be notified when a dependency changes.
// Implemented by memos and effects.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	// For memos, this invalidates the cached value.
	// For effects, this re-runs the effect.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	// Used for deduplication during batch processing.
	ID() uint64
}

// Cleanup is a function returned by effects to clean up resources.
// It is called before the effect re-runs and when the effect is disposed.
type Cleanup func()

// globalIDCounter is the source of unique IDs for all reactive primitives.
var globalIDCounter uint64

// nextID returns the next unique ID for a reactive primitive.
// IDs are monotonically increasing and never reused.
func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}
