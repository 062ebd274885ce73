package protocol

import (
	"errors"
	"io"
	"math"
)

// Decoding limits. Length prefixes come from the peer, so every
// length-driven allocation is checked against these before it happens.
const (
	// MaxAllocation caps any single length-prefixed field (1MB). Motion
	// payloads are tiny; anything near this is hostile.
	MaxAllocation = 1 << 20

	// MaxCollectionCount caps item counts in decoded collections.
	MaxCollectionCount = 10_000
)

// Decoding errors.
var (
	ErrVarintOverflow     = errors.New("protocol: varint overflow")
	ErrInvalidBool        = errors.New("protocol: invalid boolean value")
	ErrAllocationTooLarge = errors.New("protocol: allocation size exceeds limit")
	ErrCollectionTooLarge = errors.New("protocol: collection count exceeds limit")
)

// Decoder reads binary fields from a byte buffer.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder creates a decoder over buf. The decoder does not copy buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// EOF reports whether all bytes have been consumed.
func (d *Decoder) EOF() bool {
	return d.pos >= len(d.buf)
}

// ReadByte reads one byte.
func (d *Decoder) ReadByte() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

// ReadUvarint reads an unsigned varint.
func (d *Decoder) ReadUvarint() (uint64, error) {
	var v uint64
	var shift uint
	for {
		if d.pos >= len(d.buf) {
			return 0, io.ErrUnexpectedEOF
		}
		b := d.buf[d.pos]
		d.pos++
		v |= uint64(b&0x7F) << shift
		if b < 0x80 {
			return v, nil
		}
		shift += 7
		if shift >= 64 {
			return 0, ErrVarintOverflow
		}
	}
}

// ReadSvarint reads a ZigZag-encoded signed varint.
func (d *Decoder) ReadSvarint() (int64, error) {
	uv, err := d.ReadUvarint()
	if err != nil {
		return 0, err
	}
	v := int64(uv >> 1)
	if uv&1 != 0 {
		v = ^v
	}
	return v, nil
}

// ReadString reads a varint-length-prefixed string.
func (d *Decoder) ReadString() (string, error) {
	length, err := d.ReadUvarint()
	if err != nil {
		return "", err
	}
	if length > uint64(d.Remaining()) {
		return "", io.ErrUnexpectedEOF
	}
	if length > MaxAllocation {
		return "", ErrAllocationTooLarge
	}
	n := int(length)
	s := string(d.buf[d.pos : d.pos+n])
	d.pos += n
	return s, nil
}

// ReadBool reads a boolean. Only 0x00 and 0x01 are valid.
func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

// ReadUint16 reads a big-endian uint16.
func (d *Decoder) ReadUint16() (uint16, error) {
	if d.pos+2 > len(d.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	v := uint16(d.buf[d.pos])<<8 | uint16(d.buf[d.pos+1])
	d.pos += 2
	return v, nil
}

// ReadUint64 reads a big-endian uint64.
func (d *Decoder) ReadUint64() (uint64, error) {
	if d.pos+8 > len(d.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(d.buf[d.pos+i])
	}
	d.pos += 8
	return v, nil
}

// ReadFloat64 reads a big-endian IEEE 754 float64.
func (d *Decoder) ReadFloat64() (float64, error) {
	bits, err := d.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// readCount reads a collection count and validates it against
// MaxCollectionCount.
func (d *Decoder) readCount() (int, error) {
	n, err := d.ReadUvarint()
	if err != nil {
		return 0, err
	}
	if n > MaxCollectionCount {
		return 0, ErrCollectionTooLarge
	}
	return int(n), nil
}
