package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	f := NewFrame(FrameCommand, []byte{1, 2, 3})
	f.Flags = FlagUrgent

	data, err := f.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := DecodeFrame(data)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if decoded.Type != FrameCommand {
		t.Errorf("type = %v, want Command", decoded.Type)
	}
	if !decoded.Flags.Has(FlagUrgent) {
		t.Error("urgent flag lost")
	}
	if !bytes.Equal(decoded.Payload, []byte{1, 2, 3}) {
		t.Errorf("payload = %v", decoded.Payload)
	}
}

func TestFrameReadWrite(t *testing.T) {
	var buf bytes.Buffer
	want := NewFrame(FrameScene, []byte("payload"))
	if err := WriteFrame(&buf, want); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	got, err := ReadFrame(&buf)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if got.Type != want.Type || !bytes.Equal(got.Payload, want.Payload) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFrameEmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFrame(&buf, NewFrame(FrameHello, nil)); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	got, err := ReadFrame(&buf)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if len(got.Payload) != 0 {
		t.Errorf("payload = %v, want empty", got.Payload)
	}
}

func TestFrameTooLarge(t *testing.T) {
	f := NewFrame(FrameCommand, make([]byte, MaxPayloadSize+1))

	// The length field must never wrap; both encode paths reject it.
	if _, err := f.Encode(); !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("Encode err = %v, want ErrFrameTooLarge", err)
	}
	var buf bytes.Buffer
	if err := WriteFrame(&buf, f); !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("WriteFrame err = %v, want ErrFrameTooLarge", err)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteFrame wrote %d bytes for rejected frame", buf.Len())
	}
}

func TestFrameEncodeAtLimit(t *testing.T) {
	f := NewFrame(FrameCommand, make([]byte, MaxPayloadSize))
	data, err := f.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := int(data[2])<<8 | int(data[3]); got != MaxPayloadSize {
		t.Errorf("encoded length = %d, want %d", got, MaxPayloadSize)
	}
}

func TestFrameRejectsUnknownType(t *testing.T) {
	data := []byte{0x7F, 0, 0, 0}
	if _, err := DecodeFrame(data); !errors.Is(err, ErrInvalidFrameType) {
		t.Errorf("err = %v, want ErrInvalidFrameType", err)
	}
}

func TestFrameTypeString(t *testing.T) {
	tests := []struct {
		ft   FrameType
		want string
	}{
		{FrameHello, "Hello"},
		{FrameScene, "Scene"},
		{FrameCommand, "Command"},
		{FrameEvent, "Event"},
		{FrameError, "Error"},
		{FrameType(0x7F), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.ft.String(); got != tt.want {
			t.Errorf("FrameType(%d).String() = %q, want %q", tt.ft, got, tt.want)
		}
	}
}
