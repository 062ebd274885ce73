package protocol

import (
	"testing"
)

func TestHelloRoundTrip(t *testing.T) {
	payload := EncodeHello(&Hello{Version: Version, Session: "abc123"})
	got, err := DecodeHello(payload)
	if err != nil {
		t.Fatalf("DecodeHello: %v", err)
	}
	if got.Version != Version || got.Session != "abc123" {
		t.Errorf("got %+v", got)
	}
}

func TestHelloEmptySession(t *testing.T) {
	got, err := DecodeHello(EncodeHello(&Hello{Version: 1}))
	if err != nil {
		t.Fatalf("DecodeHello: %v", err)
	}
	if got.Session != "" {
		t.Errorf("session = %q, want empty", got.Session)
	}
}

func TestSceneRoundTrip(t *testing.T) {
	scene := &Scene{Values: []ValueDecl{
		{ID: 1, Name: "opacity", Initial: 0},
		{ID: 2, Name: "translateY", Initial: 20},
		{ID: 3, Name: "scale", Initial: 1},
	}}

	got, err := DecodeScene(EncodeScene(scene))
	if err != nil {
		t.Fatalf("DecodeScene: %v", err)
	}
	if len(got.Values) != 3 {
		t.Fatalf("len(values) = %d, want 3", len(got.Values))
	}
	for i, v := range scene.Values {
		if got.Values[i] != v {
			t.Errorf("value %d = %+v, want %+v", i, got.Values[i], v)
		}
	}
}

func TestSceneEmpty(t *testing.T) {
	got, err := DecodeScene(EncodeScene(&Scene{}))
	if err != nil {
		t.Fatalf("DecodeScene: %v", err)
	}
	if len(got.Values) != 0 {
		t.Errorf("values = %v, want none", got.Values)
	}
}

func TestEventRoundTrip(t *testing.T) {
	ev := &Event{Seq: 42, Name: "set-mode", Key: "festival"}
	got, err := DecodeEvent(EncodeEvent(ev))
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if *got != *ev {
		t.Errorf("got %+v, want %+v", got, ev)
	}
}

func TestEventNumericValue(t *testing.T) {
	ev := &Event{Seq: 1, Name: "set-progress", Value: 0.75}
	got, err := DecodeEvent(EncodeEvent(ev))
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if got.Value != 0.75 {
		t.Errorf("value = %v, want 0.75", got.Value)
	}
}

func TestErrorMsgRoundTrip(t *testing.T) {
	m := &ErrorMsg{Code: ErrCodeVersionMismatch, Message: "want version 1"}
	got, err := DecodeErrorMsg(EncodeErrorMsg(m))
	if err != nil {
		t.Fatalf("DecodeErrorMsg: %v", err)
	}
	if *got != *m {
		t.Errorf("got %+v, want %+v", got, m)
	}
}
