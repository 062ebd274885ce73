package protocol

import (
	"errors"
	"fmt"
	"time"

	"github.com/vango-dev/motion/pkg/motion"
)

// MaxCommandDepth limits nesting in decoded command trees. Triggers nest a
// delay around a sequence at most; anything deeper is hostile input.
const MaxCommandDepth = 16

// Command tree errors.
var (
	ErrMaxDepthExceeded = errors.New("protocol: command nesting exceeds depth limit")
	ErrUnknownCommandOp = errors.New("protocol: unknown command op")
)

// Command op bytes. Aligned with motion.CommandKind so the op byte on the
// wire and the in-memory kind agree.
const (
	opSnap     = byte(motion.KindSnap)
	opTiming   = byte(motion.KindTiming)
	opSpring   = byte(motion.KindSpring)
	opSequence = byte(motion.KindSequence)
	opDelay    = byte(motion.KindDelay)
)

// CommandMsg is a Command frame payload: one command tree aimed at a
// declared value.
type CommandMsg struct {
	ValueID uint32
	Command motion.Command
}

// EncodeCommandMsg encodes a command message to payload bytes.
func EncodeCommandMsg(m *CommandMsg) ([]byte, error) {
	e := NewEncoder()
	e.WriteUvarint(uint64(m.ValueID))
	if err := encodeCommand(e, m.Command, 0); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// DecodeCommandMsg decodes a Command frame payload.
func DecodeCommandMsg(payload []byte) (*CommandMsg, error) {
	d := NewDecoder(payload)
	id, err := d.ReadUvarint()
	if err != nil {
		return nil, fmt.Errorf("command value id: %w", err)
	}
	cmd, err := decodeCommand(d, 0)
	if err != nil {
		return nil, err
	}
	return &CommandMsg{ValueID: uint32(id), Command: cmd}, nil
}

// encodeCommand writes one command node.
//
// Wire format per node: op byte, then op-specific fields. Targets are
// float64; durations are uvarint milliseconds; spring parameters travel
// inline so clients never need a preset table.
func encodeCommand(e *Encoder, cmd motion.Command, depth int) error {
	if depth >= MaxCommandDepth {
		return ErrMaxDepthExceeded
	}

	switch c := cmd.(type) {
	case motion.SnapCommand:
		e.WriteByte(opSnap)
		e.WriteFloat64(c.Target)

	case motion.TimingCommand:
		e.WriteByte(opTiming)
		e.WriteFloat64(c.Target)
		e.WriteUvarint(uint64(c.Duration / time.Millisecond))

	case motion.SpringCommand:
		e.WriteByte(opSpring)
		e.WriteFloat64(c.Target)
		e.WriteFloat64(c.Preset.Damping)
		e.WriteFloat64(c.Preset.Stiffness)

	case motion.SequenceCommand:
		e.WriteByte(opSequence)
		e.WriteUvarint(uint64(len(c.Steps)))
		for _, step := range c.Steps {
			if err := encodeCommand(e, step, depth+1); err != nil {
				return err
			}
		}

	case motion.DelayCommand:
		e.WriteByte(opDelay)
		e.WriteUvarint(uint64(c.Wait / time.Millisecond))
		return encodeCommand(e, c.Next, depth+1)

	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommandOp, cmd)
	}
	return nil
}

// decodeCommand reads one command node, enforcing the depth limit.
func decodeCommand(d *Decoder, depth int) (motion.Command, error) {
	if depth >= MaxCommandDepth {
		return nil, ErrMaxDepthExceeded
	}

	op, err := d.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("command op: %w", err)
	}

	switch op {
	case opSnap:
		target, err := d.ReadFloat64()
		if err != nil {
			return nil, err
		}
		return motion.Snap(target), nil

	case opTiming:
		target, err := d.ReadFloat64()
		if err != nil {
			return nil, err
		}
		ms, err := d.ReadUvarint()
		if err != nil {
			return nil, err
		}
		return motion.Timing(target, time.Duration(ms)*time.Millisecond), nil

	case opSpring:
		target, err := d.ReadFloat64()
		if err != nil {
			return nil, err
		}
		damping, err := d.ReadFloat64()
		if err != nil {
			return nil, err
		}
		stiffness, err := d.ReadFloat64()
		if err != nil {
			return nil, err
		}
		preset := motion.SpringPreset{Damping: damping, Stiffness: stiffness}
		return motion.Spring(target, preset), nil

	case opSequence:
		count, err := d.readCount()
		if err != nil {
			return nil, err
		}
		steps := make([]motion.Command, 0, count)
		for i := 0; i < count; i++ {
			step, err := decodeCommand(d, depth+1)
			if err != nil {
				return nil, err
			}
			steps = append(steps, step)
		}
		return motion.Sequence(steps...), nil

	case opDelay:
		ms, err := d.ReadUvarint()
		if err != nil {
			return nil, err
		}
		next, err := decodeCommand(d, depth+1)
		if err != nil {
			return nil, err
		}
		return motion.Delay(time.Duration(ms)*time.Millisecond, next), nil

	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownCommandOp, op)
	}
}
