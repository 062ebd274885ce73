package preview

import (
	"sync"

	"github.com/vango-dev/motion/pkg/motion"
	"github.com/vango-dev/motion/pkg/protocol"
)

// StreamRuntime implements motion.Runtime by encoding every command as a
// Command frame for the connected client. The client interpolates; the
// server only applies instantaneous snaps so its copy of each value stays
// truthful for late joiners and recordings.
//
// Commands issued before a sink is attached (the demo scene animates on
// construction) are buffered and flushed once the session has sent its
// Scene frame.
type StreamRuntime struct {
	mu      sync.Mutex
	nextID  uint32
	ids     map[*motion.Value]uint32
	decls   []protocol.ValueDecl
	sink    func([]byte)
	pending [][]byte
}

// NewStreamRuntime creates a runtime with no sink attached.
func NewStreamRuntime() *StreamRuntime {
	return &StreamRuntime{ids: make(map[*motion.Value]uint32)}
}

// Start implements motion.Runtime.
func (r *StreamRuntime) Start(v *motion.Value, cmd motion.Command) {
	applySnapPrefix(v, cmd)

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.registerLocked(v)
	payload, err := protocol.EncodeCommandMsg(&protocol.CommandMsg{ValueID: id, Command: cmd})
	if err != nil {
		// Trigger-built trees never exceed the protocol limits; an error
		// here is a bug, and dropping the frame is the safest response.
		return
	}
	data, err := protocol.NewFrame(protocol.FrameCommand, payload).Encode()
	if err != nil {
		return
	}

	if r.sink == nil {
		r.pending = append(r.pending, data)
		return
	}
	r.sink(data)
}

// applySnapPrefix mirrors the instantaneous prefix of a command tree onto
// the server-side value.
func applySnapPrefix(v *motion.Value, cmd motion.Command) {
	switch c := cmd.(type) {
	case motion.SnapCommand:
		v.Set(c.Target)
	case motion.SequenceCommand:
		for _, step := range c.Steps {
			snap, ok := step.(motion.SnapCommand)
			if !ok {
				return
			}
			v.Set(snap.Target)
		}
	}
}

// registerLocked assigns an ID to a value on first sight.
func (r *StreamRuntime) registerLocked(v *motion.Value) uint32 {
	if id, ok := r.ids[v]; ok {
		return id
	}
	r.nextID++
	id := r.nextID
	r.ids[v] = id
	r.decls = append(r.decls, protocol.ValueDecl{ID: id, Name: v.Name(), Initial: v.Peek()})
	return id
}

// Register declares a value without issuing a command, so values that
// rest until an event (celebration opacity, mode scale) still appear in
// the Scene frame.
func (r *StreamRuntime) Register(v *motion.Value) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registerLocked(v)
}

// Scene returns the declarations for every registered value.
func (r *StreamRuntime) Scene() *protocol.Scene {
	r.mu.Lock()
	defer r.mu.Unlock()
	decls := make([]protocol.ValueDecl, len(r.decls))
	copy(decls, r.decls)
	return &protocol.Scene{Values: decls}
}

// Attach connects the sink and flushes buffered command frames to it, in
// issue order.
func (r *StreamRuntime) Attach(sink func([]byte)) {
	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.sink = sink
	r.mu.Unlock()

	for _, data := range pending {
		sink(data)
	}
}
