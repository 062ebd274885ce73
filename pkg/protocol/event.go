package protocol

import "fmt"

// Event is a client → server interaction event. Seq increments per
// connection so the server can drop stale duplicates after a resume. Name
// is the interaction ("toggle", "celebrate", "set-mode"); Key and Value
// carry the event's argument, with the unused one left zero.
type Event struct {
	Seq   uint64
	Name  string
	Key   string
	Value float64
}

// EncodeEvent encodes an Event frame payload.
func EncodeEvent(ev *Event) []byte {
	e := NewEncoder()
	e.WriteUvarint(ev.Seq)
	e.WriteString(ev.Name)
	e.WriteString(ev.Key)
	e.WriteFloat64(ev.Value)
	return e.Bytes()
}

// DecodeEvent decodes an Event frame payload.
func DecodeEvent(payload []byte) (*Event, error) {
	d := NewDecoder(payload)
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, fmt.Errorf("event seq: %w", err)
	}
	name, err := d.ReadString()
	if err != nil {
		return nil, fmt.Errorf("event name: %w", err)
	}
	key, err := d.ReadString()
	if err != nil {
		return nil, fmt.Errorf("event key: %w", err)
	}
	value, err := d.ReadFloat64()
	if err != nil {
		return nil, fmt.Errorf("event value: %w", err)
	}
	return &Event{Seq: seq, Name: name, Key: key, Value: value}, nil
}
