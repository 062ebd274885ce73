package motion

import "time"

// SpringPreset parameterizes a spring transition. Damping and stiffness
// are both positive; the ratio determines how much the spring overshoots
// before settling.
type SpringPreset struct {
	Damping   float64
	Stiffness float64
}

// TimingPreset parameterizes a fixed-duration transition.
type TimingPreset struct {
	Duration time.Duration
}

// Named spring presets. These numbers are fixed; renderers and recorded
// timelines depend on them.
var (
	// SpringBouncy is underdamped: visible overshoot and oscillation.
	SpringBouncy = SpringPreset{Damping: 10, Stiffness: 100}

	// SpringSmooth settles without overshoot.
	SpringSmooth = SpringPreset{Damping: 20, Stiffness: 90}

	// SpringSnappy is fast with a slight overshoot.
	SpringSnappy = SpringPreset{Damping: 20, Stiffness: 200}

	// SpringGentle settles slowly without overshoot.
	SpringGentle = SpringPreset{Damping: 16, Stiffness: 60}
)

// Named timing presets.
var (
	TimingFast     = TimingPreset{Duration: 150 * time.Millisecond}
	TimingNormal   = TimingPreset{Duration: 250 * time.Millisecond}
	TimingSlow     = TimingPreset{Duration: 400 * time.Millisecond}
	TimingVerySlow = TimingPreset{Duration: 600 * time.Millisecond}
)

// springPresets and timingPresets are the name → preset tables.
// Defined once; read-only thereafter.
var springPresets = map[string]SpringPreset{
	"bouncy": SpringBouncy,
	"smooth": SpringSmooth,
	"snappy": SpringSnappy,
	"gentle": SpringGentle,
}

var timingPresets = map[string]TimingPreset{
	"fast":     TimingFast,
	"normal":   TimingNormal,
	"slow":     TimingSlow,
	"verySlow": TimingVerySlow,
}

// SpringByName looks up a built-in spring preset by name.
func SpringByName(name string) (SpringPreset, bool) {
	p, ok := springPresets[name]
	return p, ok
}

// TimingByName looks up a built-in timing preset by name.
func TimingByName(name string) (TimingPreset, bool) {
	p, ok := timingPresets[name]
	return p, ok
}

// Springs returns a copy of the built-in spring preset table.
func Springs() map[string]SpringPreset {
	out := make(map[string]SpringPreset, len(springPresets))
	for k, v := range springPresets {
		out[k] = v
	}
	return out
}

// Timings returns a copy of the built-in timing preset table.
func Timings() map[string]TimingPreset {
	out := make(map[string]TimingPreset, len(timingPresets))
	for k, v := range timingPresets {
		out[k] = v
	}
	return out
}
