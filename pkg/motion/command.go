package motion

import "time"

// CommandKind identifies the type of a command node.
type CommandKind uint8

const (
	KindSnap CommandKind = iota + 1
	KindTiming
	KindSpring
	KindSequence
	KindDelay
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case KindSnap:
		return "snap"
	case KindTiming:
		return "timing"
	case KindSpring:
		return "spring"
	case KindSequence:
		return "sequence"
	case KindDelay:
		return "delay"
	default:
		return "unknown"
	}
}

// Command is a node in a declarative animation command tree. Triggers build
// command trees and hand them to a Runtime; they never interpolate values
// themselves. Within one tree, sequenced steps execute in literal order.
type Command interface {
	Kind() CommandKind
}

// SnapCommand sets the value to the target instantly, with no interpolation.
type SnapCommand struct {
	Target float64
}

func (SnapCommand) Kind() CommandKind { return KindSnap }

// TimingCommand interpolates to the target over a fixed duration.
type TimingCommand struct {
	Target   float64
	Duration time.Duration
}

func (TimingCommand) Kind() CommandKind { return KindTiming }

// SpringCommand approaches the target with damped spring physics.
type SpringCommand struct {
	Target float64
	Preset SpringPreset
}

func (SpringCommand) Kind() CommandKind { return KindSpring }

// SequenceCommand runs each step after the previous completes.
type SequenceCommand struct {
	Steps []Command
}

func (SequenceCommand) Kind() CommandKind { return KindSequence }

// DelayCommand waits before starting the wrapped command.
type DelayCommand struct {
	Wait time.Duration
	Next Command
}

func (DelayCommand) Kind() CommandKind { return KindDelay }

// Snap builds an instant set to target.
func Snap(target float64) SnapCommand {
	return SnapCommand{Target: target}
}

// Timing builds a fixed-duration transition to target.
func Timing(target float64, duration time.Duration) TimingCommand {
	return TimingCommand{Target: target, Duration: duration}
}

// TimingWith builds a fixed-duration transition using a timing preset.
func TimingWith(target float64, preset TimingPreset) TimingCommand {
	return TimingCommand{Target: target, Duration: preset.Duration}
}

// Spring builds a spring transition to target using the given preset.
func Spring(target float64, preset SpringPreset) SpringCommand {
	return SpringCommand{Target: target, Preset: preset}
}

// Sequence composes transitions so each starts after the previous completes.
func Sequence(steps ...Command) SequenceCommand {
	return SequenceCommand{Steps: steps}
}

// Delay prefixes a command with a fixed wait.
func Delay(wait time.Duration, next Command) DelayCommand {
	return DelayCommand{Wait: wait, Next: next}
}
