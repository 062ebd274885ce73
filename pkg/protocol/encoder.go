package protocol

import (
	"encoding/binary"
	"math"
)

// Encoder appends binary fields to an internal buffer. The zero value is
// not usable; create one with NewEncoder.
type Encoder struct {
	buf []byte
}

// NewEncoder creates an encoder with a small initial capacity.
func NewEncoder() *Encoder {
	return &Encoder{buf: make([]byte, 0, 128)}
}

// Reset empties the encoder, keeping the underlying buffer.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the encoded bytes. The slice is only valid until the next
// write or Reset.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of encoded bytes.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// WriteByte appends one byte. It never fails; the buffer grows as needed.
func (e *Encoder) WriteByte(b byte) {
	e.buf = append(e.buf, b)
}

// WriteBytes appends raw bytes with no length prefix.
func (e *Encoder) WriteBytes(b []byte) {
	e.buf = append(e.buf, b...)
}

// WriteUvarint appends an unsigned varint in the standard LEB128 layout
// (7 data bits per byte, MSB continuation), matching binary.AppendUvarint.
func (e *Encoder) WriteUvarint(v uint64) {
	e.buf = binary.AppendUvarint(e.buf, v)
}

// WriteSvarint appends a signed varint. binary.AppendVarint applies the
// same ZigZag mapping the decoder reverses.
func (e *Encoder) WriteSvarint(v int64) {
	e.buf = binary.AppendVarint(e.buf, v)
}

// WriteString appends a varint length prefix followed by the string bytes.
func (e *Encoder) WriteString(s string) {
	e.WriteUvarint(uint64(len(s)))
	e.buf = append(e.buf, s...)
}

// WriteBool appends a boolean as 0x00 or 0x01.
func (e *Encoder) WriteBool(b bool) {
	v := byte(0x00)
	if b {
		v = 0x01
	}
	e.buf = append(e.buf, v)
}

// WriteUint16 appends a big-endian uint16.
func (e *Encoder) WriteUint16(v uint16) {
	e.buf = binary.BigEndian.AppendUint16(e.buf, v)
}

// WriteUint64 appends a big-endian uint64.
func (e *Encoder) WriteUint64(v uint64) {
	e.buf = binary.BigEndian.AppendUint64(e.buf, v)
}

// WriteFloat64 appends a float64 as big-endian IEEE 754 bits.
func (e *Encoder) WriteFloat64(v float64) {
	e.buf = binary.BigEndian.AppendUint64(e.buf, math.Float64bits(v))
}
