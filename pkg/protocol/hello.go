package protocol

import "fmt"

// Version is the current protocol version. A client whose Hello carries a
// different version is rejected with an Error frame.
const Version = 1

// Hello is the first frame in each direction. The client sends its
// protocol version and an optional session token for resume; the server
// replies with its version and the assigned session ID.
type Hello struct {
	Version uint32
	Session string
}

// EncodeHello encodes a Hello frame payload.
func EncodeHello(h *Hello) []byte {
	e := NewEncoder()
	e.WriteUvarint(uint64(h.Version))
	e.WriteString(h.Session)
	return e.Bytes()
}

// DecodeHello decodes a Hello frame payload.
func DecodeHello(payload []byte) (*Hello, error) {
	d := NewDecoder(payload)
	version, err := d.ReadUvarint()
	if err != nil {
		return nil, fmt.Errorf("hello version: %w", err)
	}
	session, err := d.ReadString()
	if err != nil {
		return nil, fmt.Errorf("hello session: %w", err)
	}
	return &Hello{Version: uint32(version), Session: session}, nil
}
