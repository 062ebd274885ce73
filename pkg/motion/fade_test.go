package motion_test

import (
	"testing"
	"time"

	"github.com/vango-dev/motion/pkg/motion"
	"github.com/vango-dev/motion/pkg/motion/motiontest"
)

func TestFadeInAttach(t *testing.T) {
	rt := motiontest.NewRecorder()
	f := motion.NewFadeIn(rt, 100*time.Millisecond)

	if got := f.Style().Peek()[motion.Opacity]; got != 0 {
		t.Fatalf("initial opacity = %v, want 0", got)
	}

	f.Attach()
	rt.RequireLen(t, 1)

	cmds := rt.CommandsFor(mustValue(t, f.Style(), motion.Opacity))
	delay, ok := cmds[0].(motion.DelayCommand)
	if !ok {
		t.Fatalf("command = %T, want DelayCommand", cmds[0])
	}
	if delay.Wait != 100*time.Millisecond {
		t.Errorf("wait = %v, want 100ms", delay.Wait)
	}
	timing, ok := delay.Next.(motion.TimingCommand)
	if !ok {
		t.Fatalf("inner command = %T, want TimingCommand", delay.Next)
	}
	if timing.Target != 1 {
		t.Errorf("target = %v, want 1", timing.Target)
	}
	if timing.Duration != motion.TimingNormal.Duration {
		t.Errorf("duration = %v, want %v", timing.Duration, motion.TimingNormal.Duration)
	}
}

func TestFadeInAttachIsOneShot(t *testing.T) {
	rt := motiontest.NewRecorder()
	f := motion.NewFadeIn(rt, 0)

	f.Attach()
	f.Attach()
	rt.RequireLen(t, 1)
}

func TestFadeInDetachedAttachIsNoop(t *testing.T) {
	rt := motiontest.NewRecorder()
	f := motion.NewFadeIn(rt, 0)

	f.Detach()
	f.Attach()
	rt.RequireLen(t, 0)
}

func TestSlideUpFadeAttach(t *testing.T) {
	rt := motiontest.NewRecorder()
	s := motion.NewSlideUpFade(rt, 50*time.Millisecond, 20)

	snap := s.Style().Peek()
	if snap[motion.Opacity] != 0 {
		t.Errorf("initial opacity = %v, want 0", snap[motion.Opacity])
	}
	if snap[motion.TranslateY] != 20 {
		t.Errorf("initial translateY = %v, want 20", snap[motion.TranslateY])
	}

	s.Attach()
	rt.RequireLen(t, 2)

	opCmds := rt.CommandsFor(mustValue(t, s.Style(), motion.Opacity))
	opDelay := opCmds[0].(motion.DelayCommand)
	if opDelay.Wait != 50*time.Millisecond {
		t.Errorf("opacity wait = %v, want 50ms", opDelay.Wait)
	}
	if _, ok := opDelay.Next.(motion.TimingCommand); !ok {
		t.Errorf("opacity inner = %T, want TimingCommand", opDelay.Next)
	}

	tyCmds := rt.CommandsFor(mustValue(t, s.Style(), motion.TranslateY))
	tyDelay := tyCmds[0].(motion.DelayCommand)
	if tyDelay.Wait != 50*time.Millisecond {
		t.Errorf("translateY wait = %v, want 50ms", tyDelay.Wait)
	}
	spring, ok := tyDelay.Next.(motion.SpringCommand)
	if !ok {
		t.Fatalf("translateY inner = %T, want SpringCommand", tyDelay.Next)
	}
	if spring.Target != 0 {
		t.Errorf("spring target = %v, want 0", spring.Target)
	}
	if spring.Preset != motion.SpringSmooth {
		t.Errorf("spring preset = %+v, want smooth", spring.Preset)
	}
}

func TestStaggeredEntryDelayScalesWithIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		delay time.Duration
		want  time.Duration
	}{
		{"first item no wait", 0, 50 * time.Millisecond, 0},
		{"third item default step", 3, 0, 150 * time.Millisecond},
		{"custom step", 2, 30 * time.Millisecond, 60 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := motiontest.NewRecorder()
			s := motion.NewStaggeredEntry(rt, tt.index, tt.delay)
			s.Attach()
			rt.RequireLen(t, 2)

			for _, rec := range rt.Records() {
				delay, ok := rec.Command.(motion.DelayCommand)
				if !ok {
					t.Fatalf("command = %T, want DelayCommand", rec.Command)
				}
				if delay.Wait != tt.want {
					t.Errorf("%s wait = %v, want %v", rec.Value.Name(), delay.Wait, tt.want)
				}
			}
		})
	}
}

func TestStaggeredEntryStartOffset(t *testing.T) {
	rt := motiontest.NewRecorder()
	s := motion.NewStaggeredEntry(rt, 0, 0)

	if got := s.Style().Peek()[motion.TranslateY]; got != 15 {
		t.Errorf("initial translateY = %v, want 15", got)
	}
}

// mustValue resolves a style binding or fails the test.
func mustValue(t *testing.T, s *motion.Style, p motion.Prop) *motion.Value {
	t.Helper()
	v, ok := s.Value(p)
	if !ok {
		t.Fatalf("style has no %q binding", p)
	}
	return v
}
