package envelope

import (
	"math"
	"testing"
	"time"

	"github.com/vango-dev/motion/pkg/motion"
)

func TestSpringSettlesAtTarget(t *testing.T) {
	for name, preset := range motion.Springs() {
		t.Run(name, func(t *testing.T) {
			env := Spring(preset, 0, 1, 60)
			if !env.Settled {
				t.Fatal("spring never settled")
			}
			last := env.Samples[len(env.Samples)-1]
			if last != 1 {
				t.Errorf("final sample = %v, want exactly 1", last)
			}
			if env.Samples[0] != 0 {
				t.Errorf("first sample = %v, want 0", env.Samples[0])
			}
		})
	}
}

func TestBouncyOvershoots(t *testing.T) {
	env := Spring(motion.SpringBouncy, 0, 1, 60)
	max := 0.0
	for _, s := range env.Samples {
		if s > max {
			max = s
		}
	}
	if max <= 1 {
		t.Errorf("peak = %v, expected overshoot past 1", max)
	}
}

func TestSmoothDoesNotOvershoot(t *testing.T) {
	env := Spring(motion.SpringSmooth, 0, 1, 60)
	for i, s := range env.Samples {
		if s > 1+settleEpsilon {
			t.Fatalf("sample %d = %v, smooth should not overshoot", i, s)
		}
	}
}

func TestGentleSettlesSlowerThanSnappy(t *testing.T) {
	gentle := Spring(motion.SpringGentle, 0, 1, 60)
	snappy := Spring(motion.SpringSnappy, 0, 1, 60)
	if len(gentle.Samples) <= len(snappy.Samples) {
		t.Errorf("gentle settled in %d frames, snappy in %d; expected gentle slower",
			len(gentle.Samples), len(snappy.Samples))
	}
}

func TestTimingEndpoints(t *testing.T) {
	env := Timing(0, 1, 250*time.Millisecond, 60)
	if env.Samples[0] != 0 {
		t.Errorf("first sample = %v, want 0", env.Samples[0])
	}
	last := env.Samples[len(env.Samples)-1]
	if math.Abs(last-1) > 1e-9 {
		t.Errorf("final sample = %v, want 1", last)
	}
}

func TestTimingMonotonic(t *testing.T) {
	env := Timing(0, 1, 400*time.Millisecond, 60)
	for i := 1; i < len(env.Samples); i++ {
		if env.Samples[i] < env.Samples[i-1] {
			t.Fatalf("sample %d = %v dips below previous %v", i, env.Samples[i], env.Samples[i-1])
		}
	}
}

func TestTimingDuration(t *testing.T) {
	env := Timing(0, 1, time.Second, 60)
	if got := env.Duration(); got != time.Second {
		t.Errorf("duration = %v, want 1s", got)
	}
}

func TestTimingZeroDuration(t *testing.T) {
	env := Timing(0, 5, 0, 60)
	if len(env.Samples) != 1 || env.Samples[0] != 5 {
		t.Errorf("samples = %v, want [5]", env.Samples)
	}
}

func TestDefaultFPSFallback(t *testing.T) {
	env := Spring(motion.SpringSmooth, 0, 1, 0)
	if env.FPS != DefaultFPS {
		t.Errorf("fps = %d, want %d", env.FPS, DefaultFPS)
	}
}
