// Package envelope samples animation presets into value-over-time curves.
// The library itself never interpolates; these samples exist for preview
// tooling that wants to show what a preset looks like before a renderer
// plays it.
package envelope

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/vango-dev/motion/pkg/motion"
)

const (
	// DefaultFPS is the sampling rate used when the caller passes 0.
	DefaultFPS = 60

	// maxSpringSamples bounds the simulation of springs that never quite
	// settle numerically (10 seconds at 60fps).
	maxSpringSamples = 600

	// settleEpsilon is how close position and velocity must be to rest
	// before a spring counts as settled.
	settleEpsilon = 1e-3
)

// Envelope is a sampled curve. Samples[0] is the value at t=0; each
// subsequent sample is one frame later.
type Envelope struct {
	FPS     int       `json:"fps"`
	Samples []float64 `json:"samples"`
	Settled bool      `json:"settled"`
}

// Duration returns the sampled duration.
func (e Envelope) Duration() time.Duration {
	if e.FPS == 0 || len(e.Samples) == 0 {
		return 0
	}
	return time.Duration(len(e.Samples)-1) * time.Second / time.Duration(e.FPS)
}

// Spring samples a spring preset moving from one value to another,
// stopping when the spring settles or the sample cap is reached.
//
// The preset's stiffness and damping map onto the solver's angular
// frequency and damping ratio: omega = sqrt(stiffness),
// zeta = damping / (2 * sqrt(stiffness)). A zeta below 1 overshoots.
func Spring(preset motion.SpringPreset, from, to float64, fps int) Envelope {
	if fps <= 0 {
		fps = DefaultFPS
	}

	omega := math.Sqrt(preset.Stiffness)
	zeta := preset.Damping / (2 * math.Sqrt(preset.Stiffness))
	spring := harmonica.NewSpring(harmonica.FPS(fps), omega, zeta)

	env := Envelope{FPS: fps, Samples: []float64{from}}
	pos, vel := from, 0.0
	for i := 0; i < maxSpringSamples; i++ {
		pos, vel = spring.Update(pos, vel, to)
		env.Samples = append(env.Samples, pos)
		if math.Abs(pos-to) < settleEpsilon && math.Abs(vel) < settleEpsilon {
			env.Samples[len(env.Samples)-1] = to
			env.Settled = true
			break
		}
	}
	return env
}

// Timing samples a fixed-duration transition using a cubic ease-in-out
// curve. The final sample lands exactly on the target.
func Timing(from, to float64, duration time.Duration, fps int) Envelope {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if duration <= 0 {
		return Envelope{FPS: fps, Samples: []float64{to}, Settled: true}
	}

	frames := int(duration.Seconds() * float64(fps))
	if frames < 1 {
		frames = 1
	}

	env := Envelope{FPS: fps, Settled: true}
	env.Samples = make([]float64, 0, frames+1)
	for i := 0; i <= frames; i++ {
		t := float64(i) / float64(frames)
		env.Samples = append(env.Samples, from+(to-from)*easeInOutCubic(t))
	}
	return env
}

// easeInOutCubic maps linear progress to eased progress.
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
