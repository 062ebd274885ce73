package motion_test

import (
	"testing"

	"github.com/vango-dev/motion/pkg/motion"
	"github.com/vango-dev/motion/pkg/motion/motiontest"
)

func TestScalePopFalseAttachIssuesNothing(t *testing.T) {
	rt := motiontest.NewRecorder()
	s := motion.NewScalePop(rt, false)

	s.Attach()
	rt.RequireLen(t, 0)

	if got := s.Style().Peek()[motion.Scale]; got != 1 {
		t.Errorf("resting scale = %v, want 1", got)
	}
}

func TestScalePopTrueAttachPops(t *testing.T) {
	rt := motiontest.NewRecorder()
	s := motion.NewScalePop(rt, true)

	s.Attach()
	rt.RequireLen(t, 1)
	assertPop(t, rt.Records()[0].Command)
}

func TestScalePopFiresOnRisingEdgeOnly(t *testing.T) {
	rt := motiontest.NewRecorder()
	s := motion.NewScalePop(rt, false)
	s.Attach()

	s.SetTrigger(true)
	rt.RequireLen(t, 1)
	assertPop(t, rt.Records()[0].Command)

	// Repeated true and the falling edge issue nothing.
	s.SetTrigger(true)
	s.SetTrigger(false)
	rt.RequireLen(t, 1)

	// Next rising edge pops again.
	s.SetTrigger(true)
	rt.RequireLen(t, 2)
}

func TestScalePopDetachedSetTriggerIsNoop(t *testing.T) {
	rt := motiontest.NewRecorder()
	s := motion.NewScalePop(rt, false)
	s.Attach()
	s.Detach()

	s.SetTrigger(true)
	rt.RequireLen(t, 0)
}

// assertPop checks the snap-to-0.8 then bouncy-spring-to-1 sequence.
func assertPop(t *testing.T, cmd motion.Command) {
	t.Helper()
	seq, ok := cmd.(motion.SequenceCommand)
	if !ok {
		t.Fatalf("command = %T, want SequenceCommand", cmd)
	}
	if len(seq.Steps) != 2 {
		t.Fatalf("len(steps) = %d, want 2", len(seq.Steps))
	}
	snap, ok := seq.Steps[0].(motion.SnapCommand)
	if !ok || snap.Target != 0.8 {
		t.Errorf("step 0 = %#v, want snap to 0.8", seq.Steps[0])
	}
	spring, ok := seq.Steps[1].(motion.SpringCommand)
	if !ok || spring.Target != 1 || spring.Preset != motion.SpringBouncy {
		t.Errorf("step 1 = %#v, want bouncy spring to 1", seq.Steps[1])
	}
}
