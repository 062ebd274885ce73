package reactive

import (
	"reflect"
	"sync"
)

// source is the type-erased dependency node embedded in Signal[T] and
// Memo[T]. Listeners attach to it during tracked reads and are notified
// when the owning primitive changes.
type source struct {
	id uint64

	mu   sync.Mutex
	subs map[uint64]Listener
}

// attach subscribes a listener. Keyed by listener ID, so re-reading the
// same signal inside one tracked run is idempotent.
func (s *source) attach(l Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[uint64]Listener)
	}
	s.subs[l.ID()] = l
	s.mu.Unlock()
}

// detach removes a listener.
func (s *source) detach(l Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	delete(s.subs, l.ID())
	s.mu.Unlock()
}

// changed notifies every attached listener. The subscriber set is copied
// first so callbacks run without the lock held. Inside a Batch the
// notifications are queued and deduplicated instead.
func (s *source) changed() {
	s.mu.Lock()
	subs := make([]Listener, 0, len(s.subs))
	for _, l := range s.subs {
		subs = append(subs, l)
	}
	s.mu.Unlock()

	batching := getBatchDepth() > 0
	for _, l := range subs {
		if batching {
			queuePendingUpdate(l)
		} else {
			l.MarkDirty()
		}
	}
}

// track subscribes the current listener, if any, and records this node as
// one of its sources.
func (s *source) track() {
	l := getCurrentListener()
	if l == nil {
		return
	}
	s.attach(l)
	if st, ok := l.(sourceTracker); ok {
		st.addSource(s)
	}
}

// Signal is a reactive value container.
// Reading a Signal's value during a tracked context (memo computation or
// effect execution) automatically subscribes the current listener to
// receive notifications when the value changes.
type Signal[T any] struct {
	src source

	mu    sync.RWMutex
	value T

	// equal determines whether a write actually changed the value.
	// If nil, uses default equality checking.
	equal func(T, T) bool
}

// NewSignal creates a new signal with the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		src:   source{id: nextID()},
		value: initial,
	}
}

// Get returns the current value and subscribes the current listener.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	value := s.value
	s.mu.RUnlock()

	// Track after releasing the value lock to prevent deadlock.
	s.src.track()
	return value
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the signal's value and notifies subscribers if it changed.
func (s *Signal[T]) Set(value T) {
	s.write(func(T) T { return value })
}

// Update atomically reads and updates the signal's value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.write(fn)
}

func (s *Signal[T]) write(fn func(T) T) {
	s.mu.Lock()
	next := fn(s.value)
	if s.equals(s.value, next) {
		s.mu.Unlock()
		return
	}
	s.value = next
	s.mu.Unlock()

	s.src.changed()
}

// WithEquals returns the signal configured with a custom equality function.
// Useful for types where reflect.DeepEqual is too expensive or wrong.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.src.id
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == when the dynamic type supports it and falls back
// to reflect.DeepEqual otherwise.
func defaultEquals[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	if reflect.TypeOf(av).Comparable() {
		return av == bv
	}
	return reflect.DeepEqual(a, b)
}

// sourceTracker is implemented by listeners that record which signals they
// read, so they can unsubscribe before re-tracking.
type sourceTracker interface {
	Listener
	addSource(src *source)
}
