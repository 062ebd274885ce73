package protocol

import "fmt"

// ValueDecl declares one animatable value to the client: the ID later
// Command frames address, the value's name, and its resting value.
type ValueDecl struct {
	ID      uint32
	Name    string
	Initial float64
}

// Scene is a Scene frame payload: the full set of values the client will
// animate. Sent once after the handshake and again whenever the scene is
// rebuilt.
type Scene struct {
	Values []ValueDecl
}

// EncodeScene encodes a Scene frame payload.
func EncodeScene(s *Scene) []byte {
	e := NewEncoder()
	e.WriteUvarint(uint64(len(s.Values)))
	for _, v := range s.Values {
		e.WriteUvarint(uint64(v.ID))
		e.WriteString(v.Name)
		e.WriteFloat64(v.Initial)
	}
	return e.Bytes()
}

// DecodeScene decodes a Scene frame payload.
func DecodeScene(payload []byte) (*Scene, error) {
	d := NewDecoder(payload)
	count, err := d.readCount()
	if err != nil {
		return nil, fmt.Errorf("scene count: %w", err)
	}

	values := make([]ValueDecl, 0, count)
	for i := 0; i < count; i++ {
		id, err := d.ReadUvarint()
		if err != nil {
			return nil, fmt.Errorf("scene value %d id: %w", i, err)
		}
		name, err := d.ReadString()
		if err != nil {
			return nil, fmt.Errorf("scene value %d name: %w", i, err)
		}
		initial, err := d.ReadFloat64()
		if err != nil {
			return nil, fmt.Errorf("scene value %d initial: %w", i, err)
		}
		values = append(values, ValueDecl{ID: uint32(id), Name: name, Initial: initial})
	}
	return &Scene{Values: values}, nil
}
