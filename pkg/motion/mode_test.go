package motion_test

import (
	"testing"
	"time"

	"github.com/vango-dev/motion/pkg/motion"
	"github.com/vango-dev/motion/pkg/motion/motiontest"
)

func TestModeIndex(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"normal", 0},
		{"travel", 1},
		{"sick", 2},
		{"exam", 3},
		{"festival", 4},
		{"holiday", 0}, // unknown labels fall back to normal's slot
		{"", 0},
	}

	for _, tt := range tests {
		if got := motion.ModeIndex(tt.label); got != tt.want {
			t.Errorf("ModeIndex(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestModeTransitionAttachIssuesNothing(t *testing.T) {
	rt := motiontest.NewRecorder()
	m := motion.NewModeTransition(rt, "exam")
	m.Attach()
	rt.RequireLen(t, 0)

	if got := m.ColorIndex().Peek(); got != 3 {
		t.Errorf("initial colorIndex = %v, want 3", got)
	}
	if got := m.Scale().Peek(); got != 1 {
		t.Errorf("initial scale = %v, want 1", got)
	}
}

func TestModeTransitionSetMode(t *testing.T) {
	rt := motiontest.NewRecorder()
	m := motion.NewModeTransition(rt, "normal")
	m.Attach()

	m.SetMode("festival")
	rt.RequireLen(t, 2)

	colorCmds := rt.CommandsFor(m.ColorIndex())
	timing, ok := colorCmds[0].(motion.TimingCommand)
	if !ok || timing.Target != 4 || timing.Duration != motion.TimingSlow.Duration {
		t.Errorf("color command = %#v, want slow timing to 4", colorCmds[0])
	}

	scaleCmds := rt.CommandsFor(m.Scale())
	seq, ok := scaleCmds[0].(motion.SequenceCommand)
	if !ok || len(seq.Steps) != 2 {
		t.Fatalf("scale command = %#v, want 2-step sequence", scaleCmds[0])
	}
	dip, ok := seq.Steps[0].(motion.TimingCommand)
	if !ok || dip.Target != 0.98 || dip.Duration != 100*time.Millisecond {
		t.Errorf("step 0 = %#v, want timing to 0.98 over 100ms", seq.Steps[0])
	}
	settle, ok := seq.Steps[1].(motion.SpringCommand)
	if !ok || settle.Target != 1 || settle.Preset != motion.SpringGentle {
		t.Errorf("step 1 = %#v, want gentle spring to 1", seq.Steps[1])
	}
}

func TestModeTransitionSameModeIsNoop(t *testing.T) {
	rt := motiontest.NewRecorder()
	m := motion.NewModeTransition(rt, "sick")
	m.Attach()

	m.SetMode("sick")
	rt.RequireLen(t, 0)
}

func TestModeTransitionUnknownMode(t *testing.T) {
	rt := motiontest.NewRecorder()
	m := motion.NewModeTransition(rt, "travel")
	m.Attach()

	m.SetMode("mystery")
	rt.RequireLen(t, 2)

	timing := rt.CommandsFor(m.ColorIndex())[0].(motion.TimingCommand)
	if timing.Target != 0 {
		t.Errorf("unknown mode target = %v, want 0", timing.Target)
	}
}
