package reactive

import "sync"

// Owner is a disposal scope for reactive primitives. Disposing an Owner
// disposes every effect, cleanup, and child owner it holds, so tearing
// down a host UI element tears down everything the element created.
//
// Owners form a hierarchy mirroring the host element tree: each element's
// Owner is a child of its parent element's Owner.
type Owner struct {
	id     uint64
	parent *Owner

	// mu guards everything below.
	mu       sync.Mutex
	children []*Owner
	effects  []*Effect
	cleanups []func()
	disposed bool
}

// NewOwner creates a new Owner with the given parent.
// If parent is nil, creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.adopt(o)
	}
	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil if this is a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed returns true if this Owner has been disposed.
func (o *Owner) IsDisposed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.disposed
}

func (o *Owner) adopt(child *Owner) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) disown(child *Owner) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// registerEffect adds an effect to this Owner.
// The effect is disposed when this Owner is disposed.
func (o *Owner) registerEffect(e *Effect) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.disposed {
		return
	}
	o.effects = append(o.effects, e)
}

// OnCleanup registers a cleanup function to run when this Owner is disposed.
// If the Owner is already disposed, the cleanup runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
	o.mu.Unlock()
}

// Dispose disposes this Owner and all its children, effects, and cleanups.
// Children and cleanups run in reverse creation order.
// After disposal, the Owner cannot be used.
func (o *Owner) Dispose() {
	o.mu.Lock()
	if o.disposed {
		o.mu.Unlock()
		return
	}
	o.disposed = true
	children := o.children
	effects := o.effects
	cleanups := o.cleanups
	o.children, o.effects, o.cleanups = nil, nil, nil
	o.mu.Unlock()

	if o.parent != nil {
		o.parent.disown(o)
	}

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}
	for _, e := range effects {
		e.dispose()
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
