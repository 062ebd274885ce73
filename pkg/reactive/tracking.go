package reactive

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// goroutineState is the per-goroutine tracking state: which owner adopts
// new effects, which listener is recording dependencies, and the batch
// bookkeeping. Only the owning goroutine touches its state, so the fields
// need no lock.
type goroutineState struct {
	owner    *Owner
	listener Listener
	batch    int
	queued   []Listener
}

func (st *goroutineState) idle() bool {
	return st.owner == nil && st.listener == nil && st.batch == 0 && len(st.queued) == 0
}

// states maps goroutine ID to its tracking state. Entries are dropped as
// soon as a goroutine's state goes idle, so short-lived goroutines don't
// accumulate.
var states sync.Map

// goroutineID parses the current goroutine's ID out of the stack header,
// which starts "goroutine <id> [".
func goroutineID() uint64 {
	var buf [64]byte
	header := buf[:runtime.Stack(buf[:], false)]
	header = bytes.TrimPrefix(header, []byte("goroutine "))
	if i := bytes.IndexByte(header, ' '); i >= 0 {
		header = header[:i]
	}
	id, _ := strconv.ParseUint(string(header), 10, 64)
	return id
}

func stateFor(gid uint64) *goroutineState {
	if st, ok := states.Load(gid); ok {
		return st.(*goroutineState)
	}
	st := &goroutineState{}
	states.Store(gid, st)
	return st
}

// sweep drops the state entry once nothing references it.
func sweep(gid uint64, st *goroutineState) {
	if st.idle() {
		states.Delete(gid)
	}
}

func getCurrentListener() Listener {
	gid := goroutineID()
	st := stateFor(gid)
	l := st.listener
	sweep(gid, st)
	return l
}

// setCurrentListener installs the listener that tracked reads subscribe,
// returning the previous one so callers can restore it.
func setCurrentListener(l Listener) Listener {
	gid := goroutineID()
	st := stateFor(gid)
	old := st.listener
	st.listener = l
	sweep(gid, st)
	return old
}

// CurrentOwner returns the current owner for the goroutine, or nil.
func CurrentOwner() *Owner {
	gid := goroutineID()
	st := stateFor(gid)
	o := st.owner
	sweep(gid, st)
	return o
}

func setCurrentOwner(o *Owner) *Owner {
	gid := goroutineID()
	st := stateFor(gid)
	old := st.owner
	st.owner = o
	sweep(gid, st)
	return old
}

func getBatchDepth() int {
	gid := goroutineID()
	st := stateFor(gid)
	depth := st.batch
	sweep(gid, st)
	return depth
}

func queuePendingUpdate(l Listener) {
	st := stateFor(goroutineID())
	st.queued = append(st.queued, l)
}

// WithOwner runs fn with the specified owner as the current owner.
// Used when spawning goroutines that need to create effects belonging
// to a specific host element.
func WithOwner(owner *Owner, fn func()) {
	old := setCurrentOwner(owner)
	defer setCurrentOwner(old)
	fn()
}

// WithListener runs fn with the specified listener for tracking.
func WithListener(l Listener, fn func()) {
	old := setCurrentListener(l)
	defer setCurrentListener(old)
	fn()
}

// Untracked runs fn without tracking signal reads as dependencies.
// For single signal reads, prefer signal.Peek().
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}

// Batch groups multiple signal updates into a single notification phase.
// Updates within the batch are collected, deduplicated by listener ID,
// and notified once when the outermost batch completes.
func Batch(fn func()) {
	gid := goroutineID()
	st := stateFor(gid)
	st.batch++

	defer func() {
		st.batch--
		if st.batch == 0 {
			queued := st.queued
			st.queued = nil
			sweep(gid, st)
			flushQueued(queued)
		}
	}()

	fn()
}

// flushQueued notifies each distinct listener once, in queue order.
func flushQueued(queued []Listener) {
	seen := make(map[uint64]bool, len(queued))
	for _, l := range queued {
		if seen[l.ID()] {
			continue
		}
		seen[l.ID()] = true
		l.MarkDirty()
	}
}
