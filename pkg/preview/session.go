package preview

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/motion/pkg/motion"
	"github.com/vango-dev/motion/pkg/protocol"
	"github.com/vango-dev/motion/pkg/timeline"
)

const (
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second

	sendBuffer = 64
)

// session is one connected preview client: a demo scene of its own, a
// stream runtime feeding the socket, and the read/write loops.
type session struct {
	id     string
	conn   *websocket.Conn
	logger *slog.Logger

	rt    *StreamRuntime
	rec   *timeline.Recorder
	store timeline.Store
	scene *DemoScene

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	lastSeq   uint64

	// writeMu serializes writes to conn: the write loop and the read
	// goroutine's error replies share it, and gorilla connections allow
	// only one writer at a time.
	writeMu sync.Mutex
}

// newSession builds the per-connection scene and starts its loops. Every
// command passes through a timeline recorder on its way to the socket;
// when the session ends the recording is saved to store, if one is set.
func newSession(id string, conn *websocket.Conn, logger *slog.Logger, store timeline.Store) *session {
	rt := NewStreamRuntime()
	rec := timeline.NewRecorder("session-"+id, rt)
	s := &session{
		id:     id,
		conn:   conn,
		logger: logger.With("session", id),
		rt:     rt,
		rec:    rec,
		store:  store,
		scene:  NewDemoScene(rec, rt, motion.SystemClock{}),
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
	return s
}

// start runs the session loops. Blocks until the read loop exits.
func (s *session) start() {
	go s.writeLoop()
	s.readLoop()
}

// readLoop reads frames until the connection closes. The handshake is
// strict: the first frame must be a Hello with a matching version.
func (s *session) readLoop() {
	defer s.close()

	greeted := false
	for {
		s.conn.SetReadDeadline(time.Now().Add(readTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
				metrics().wsErrors.WithLabelValues("read").Inc()
			}
			return
		}

		frame, err := protocol.DecodeFrame(msg)
		if err != nil {
			s.logger.Error("frame decode error", "error", err)
			metrics().wsErrors.WithLabelValues("decode").Inc()
			s.sendError(protocol.ErrCodeBadFrame, "undecodable frame")
			return
		}

		if !greeted {
			if frame.Type != protocol.FrameHello {
				s.sendError(protocol.ErrCodeBadFrame, "expected hello")
				return
			}
			if !s.handleHello(frame.Payload) {
				return
			}
			greeted = true
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			s.handleEvent(frame.Payload)
		default:
			s.logger.Warn("unexpected frame type", "type", frame.Type.String())
		}
	}
}

// handleHello validates the client version and replies with the server
// Hello, the Scene declarations, and any buffered attach-time commands.
func (s *session) handleHello(payload []byte) bool {
	hello, err := protocol.DecodeHello(payload)
	if err != nil {
		s.logger.Error("hello decode error", "error", err)
		s.sendError(protocol.ErrCodeBadFrame, "undecodable hello")
		return false
	}
	if hello.Version != protocol.Version {
		s.logger.Warn("version mismatch", "client", hello.Version, "server", protocol.Version)
		s.sendError(protocol.ErrCodeVersionMismatch, "unsupported protocol version")
		return false
	}

	reply := protocol.EncodeHello(&protocol.Hello{Version: protocol.Version, Session: s.id})
	s.enqueueFrame(protocol.NewFrame(protocol.FrameHello, reply))
	s.enqueueFrame(protocol.NewFrame(protocol.FrameScene, protocol.EncodeScene(s.rt.Scene())))

	// From here on, trigger commands stream directly to the socket.
	s.rt.Attach(func(data []byte) {
		metrics().commandsSent.Inc()
		s.enqueue(data)
	})

	s.logger.Info("session established")
	return true
}

// handleEvent decodes a client event and routes it to the scene. Stale
// sequence numbers (replays after reconnect) are dropped.
func (s *session) handleEvent(payload []byte) {
	ev, err := protocol.DecodeEvent(payload)
	if err != nil {
		s.logger.Error("event decode error", "error", err)
		metrics().wsErrors.WithLabelValues("decode").Inc()
		return
	}
	if ev.Seq <= s.lastSeq {
		s.logger.Debug("dropping stale event", "seq", ev.Seq, "last", s.lastSeq)
		return
	}
	s.lastSeq = ev.Seq

	metrics().eventsTotal.WithLabelValues(ev.Name).Inc()
	s.scene.HandleEvent(ev)
}

// writeLoop drains the send channel and keeps the connection alive with
// pings.
func (s *session) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case data := <-s.send:
			if err := s.write(websocket.BinaryMessage, data); err != nil {
				s.logger.Error("write error", "error", err)
				metrics().wsErrors.WithLabelValues("write").Inc()
				s.close()
				return
			}
			metrics().bytesSent.Add(float64(len(data)))

		case <-ticker.C:
			if err := s.write(websocket.PingMessage, nil); err != nil {
				s.close()
				return
			}

		case <-s.done:
			return
		}
	}
}

// write sends one websocket message under the write lock, with the
// standard deadline.
func (s *session) write(messageType int, data []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return s.conn.WriteMessage(messageType, data)
}

// enqueueFrame encodes a frame and queues its bytes for the write loop.
// An oversized frame is dropped; nothing the session builds approaches the
// payload limit.
func (s *session) enqueueFrame(f *protocol.Frame) {
	data, err := f.Encode()
	if err != nil {
		s.logger.Error("frame encode error", "type", f.Type.String(), "error", err)
		return
	}
	s.enqueue(data)
}

// enqueue queues a frame for the write loop, dropping it if the session
// is closing or the client cannot keep up.
func (s *session) enqueue(data []byte) {
	select {
	case s.send <- data:
	case <-s.done:
	default:
		s.logger.Warn("send buffer full, dropping frame")
		metrics().wsErrors.WithLabelValues("backpressure").Inc()
	}
}

// sendError writes an Error frame from the read goroutine; the connection
// is about to close, so the write loop's queue is bypassed, but the write
// itself still goes through the shared lock.
func (s *session) sendError(code, message string) {
	payload := protocol.EncodeErrorMsg(&protocol.ErrorMsg{Code: code, Message: message})
	data, err := protocol.NewFrame(protocol.FrameError, payload).Encode()
	if err != nil {
		return
	}
	_ = s.write(websocket.BinaryMessage, data)
}

// close tears the session down once and persists its recording.
func (s *session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.scene.Close()
		_ = s.conn.Close()

		if s.store != nil && s.rec.Len() > 0 {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if id, err := s.store.Save(ctx, s.rec.Timeline()); err != nil {
				s.logger.Error("saving recording", "error", err)
			} else {
				s.logger.Info("recording saved", "recording", id)
			}
		}
		s.logger.Info("session closed")
	})
}
