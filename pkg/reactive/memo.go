package reactive

import (
	"sync"
	"sync/atomic"
)

// Memo is a cached computation that automatically tracks its dependencies.
// When any dependency changes, the memo is invalidated and recomputes on
// the next read.
//
// Memos are lazy: they only compute their value when Get or Peek is called.
// If multiple signals change before a read, the memo recomputes once.
//
// Memos can themselves be subscribed to, so derived values can be chained.
type Memo[T any] struct {
	src source

	// compute is the function that computes the memo's value.
	compute func() T

	// value is the cached computed value.
	value   T
	valueMu sync.RWMutex

	// valid indicates whether the cached value is current.
	valid atomic.Bool

	// sources are the signals/memos this memo depends on.
	sources   []*source
	sourcesMu sync.Mutex

	// computing prevents infinite recursion in circular dependencies.
	computing atomic.Bool
}

// NewMemo creates a new memo with the given computation function.
// The computation is not run immediately; it runs lazily on first read.
func NewMemo[T any](compute func() T) *Memo[T] {
	return &Memo[T]{
		src:     source{id: nextID()},
		compute: compute,
	}
}

// Get returns the memo's value, recomputing if necessary, and subscribes
// the current listener.
func (m *Memo[T]) Get() T {
	m.src.track()

	if !m.valid.Load() {
		m.recompute()
	}

	m.valueMu.RLock()
	value := m.value
	m.valueMu.RUnlock()
	return value
}

// Peek returns the memo's value without subscribing.
// Still recomputes if the cached value is stale.
func (m *Memo[T]) Peek() T {
	if !m.valid.Load() {
		m.recompute()
	}
	m.valueMu.RLock()
	value := m.value
	m.valueMu.RUnlock()
	return value
}

// MarkDirty invalidates the memo and propagates to subscribers.
// Implements the Listener interface.
func (m *Memo[T]) MarkDirty() {
	// CAS keeps the invalidation idempotent.
	if m.valid.CompareAndSwap(true, false) {
		m.src.changed()
	}
}

// ID returns the unique identifier for this memo.
// Implements the Listener interface.
func (m *Memo[T]) ID() uint64 {
	return m.src.id
}

// addSource records a source dependency.
// Implements the sourceTracker interface.
func (m *Memo[T]) addSource(src *source) {
	m.sourcesMu.Lock()
	defer m.sourcesMu.Unlock()

	for _, s := range m.sources {
		if s == src {
			return
		}
	}
	m.sources = append(m.sources, src)
}

// recompute runs the computation and updates the cached value.
func (m *Memo[T]) recompute() {
	if m.computing.Swap(true) {
		// Already computing: circular dependency.
		return
	}
	defer m.computing.Store(false)

	// Detach from old sources before re-tracking.
	m.sourcesMu.Lock()
	for _, src := range m.sources {
		src.detach(m)
	}
	m.sources = m.sources[:0]
	m.sourcesMu.Unlock()

	old := setCurrentListener(m)
	newValue := m.compute()
	setCurrentListener(old)

	m.valueMu.Lock()
	m.value = newValue
	m.valueMu.Unlock()

	m.valid.Store(true)
}

var _ sourceTracker = (*Memo[int])(nil)
