package motion

import "time"

// modeDipDuration is the length of the scale dip when the mode changes.
const modeDipDuration = 100 * time.Millisecond

// modeIndexes maps symbolic mode labels to numeric animation targets.
var modeIndexes = map[string]int{
	"normal":   0,
	"travel":   1,
	"sick":     2,
	"exam":     3,
	"festival": 4,
}

// ModeIndex converts a mode label to its numeric animation target.
// Unknown labels silently map to 0, the same as "normal"; callers
// introducing a new mode must add it to the table.
//
// TODO(product): confirm whether the silent fallback for unknown labels
// is intended, or should surface a diagnostic.
func ModeIndex(label string) int {
	return modeIndexes[label]
}

// ModeTransition animates a switch between UI modes: the color index
// crossfades to the new mode's slot while the content dips to 98% scale
// and settles back with a gentle spring. Both are exposed as raw values.
type ModeTransition struct {
	rt   Runtime
	mode string

	colorIndex *Value
	scale      *Value
	life       lifecycle
}

// NewModeTransition creates a mode transition resting on the given mode.
func NewModeTransition(rt Runtime, mode string) *ModeTransition {
	return &ModeTransition{
		rt:         rt,
		mode:       mode,
		colorIndex: NewValue("colorIndex", float64(ModeIndex(mode))),
		scale:      NewValue("scale", 1),
	}
}

// Attach initializes the trigger. The color index is already pinned to the
// initial mode; no command is issued.
func (m *ModeTransition) Attach() {
	m.life.attach()
}

// SetMode animates to a new mode. Issues no command if the label is
// unchanged.
func (m *ModeTransition) SetMode(mode string) {
	if !m.life.active() || mode == m.mode {
		return
	}
	m.mode = mode

	m.rt.Start(m.colorIndex, TimingWith(float64(ModeIndex(mode)), TimingSlow))
	m.rt.Start(m.scale, Sequence(
		Timing(0.98, modeDipDuration),
		Spring(1, SpringGentle),
	))
}

// Detach marks the trigger dead.
func (m *ModeTransition) Detach() {
	m.life.detach()
}

// ColorIndex returns the animatable color index value.
func (m *ModeTransition) ColorIndex() *Value {
	return m.colorIndex
}

// Scale returns the animatable scale value.
func (m *ModeTransition) Scale() *Value {
	return m.scale
}
