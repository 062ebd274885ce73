package protocol

import (
	"errors"
	"io"
)

const (
	// FrameHeaderSize is the fixed frame header length in bytes.
	FrameHeaderSize = 4

	// MaxPayloadSize is the largest payload the 2-byte length field can
	// describe.
	MaxPayloadSize = 65535
)

// FrameType identifies the kind of frame.
type FrameType uint8

const (
	FrameHello   FrameType = 0x00 // connection setup, both directions
	FrameScene   FrameType = 0x01 // server → client value declarations
	FrameCommand FrameType = 0x02 // server → client animation command
	FrameEvent   FrameType = 0x03 // client → server interaction event
	FrameError   FrameType = 0x04 // either direction, fatal
)

// String returns a human-readable frame type name.
func (ft FrameType) String() string {
	switch ft {
	case FrameHello:
		return "Hello"
	case FrameScene:
		return "Scene"
	case FrameCommand:
		return "Command"
	case FrameEvent:
		return "Event"
	case FrameError:
		return "Error"
	default:
		return "Unknown"
	}
}

// FrameFlags carry per-frame processing hints.
type FrameFlags uint8

const (
	// FlagUrgent asks the client to apply the frame before queued ones.
	FlagUrgent FrameFlags = 0x01
)

// Has reports whether flag is set.
func (ff FrameFlags) Has(flag FrameFlags) bool {
	return ff&flag != 0
}

// Frame errors.
var (
	ErrFrameTooLarge    = errors.New("protocol: frame payload too large")
	ErrInvalidFrameType = errors.New("protocol: invalid frame type")
)

// Frame is one wire frame: a 4-byte header (type, flags, big-endian
// payload length) followed by the payload.
type Frame struct {
	Type    FrameType
	Flags   FrameFlags
	Payload []byte
}

// NewFrame creates a frame with no flags set.
func NewFrame(ft FrameType, payload []byte) *Frame {
	return &Frame{Type: ft, Payload: payload}
}

// Encode returns the frame's wire bytes, header included. A payload the
// 2-byte length field cannot describe is an error, never a truncated
// header.
func (f *Frame) Encode() ([]byte, error) {
	length := len(f.Payload)
	if length > MaxPayloadSize {
		return nil, ErrFrameTooLarge
	}
	buf := make([]byte, FrameHeaderSize+length)
	buf[0] = byte(f.Type)
	buf[1] = byte(f.Flags)
	buf[2] = byte(length >> 8)
	buf[3] = byte(length)
	copy(buf[FrameHeaderSize:], f.Payload)
	return buf, nil
}

// DecodeFrame decodes one frame from data. The payload is copied, so the
// frame stays valid after data is reused.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) < FrameHeaderSize {
		return nil, io.ErrUnexpectedEOF
	}

	ft := FrameType(data[0])
	if ft > FrameError {
		return nil, ErrInvalidFrameType
	}
	flags := FrameFlags(data[1])
	length := int(data[2])<<8 | int(data[3])

	if len(data) < FrameHeaderSize+length {
		return nil, io.ErrUnexpectedEOF
	}

	payload := make([]byte, length)
	copy(payload, data[FrameHeaderSize:FrameHeaderSize+length])

	return &Frame{Type: ft, Flags: flags, Payload: payload}, nil
}

// ReadFrame reads one complete frame from r.
func ReadFrame(r io.Reader) (*Frame, error) {
	header := make([]byte, FrameHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	ft := FrameType(header[0])
	if ft > FrameError {
		return nil, ErrInvalidFrameType
	}
	flags := FrameFlags(header[1])
	length := int(header[2])<<8 | int(header[3])

	payload := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, err
		}
	}

	return &Frame{Type: ft, Flags: flags, Payload: payload}, nil
}

// WriteFrame writes the frame to w.
func WriteFrame(w io.Writer, f *Frame) error {
	data, err := f.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
