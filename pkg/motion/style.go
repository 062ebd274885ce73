package motion

import (
	"sort"

	"github.com/vango-dev/motion/pkg/reactive"
)

// Prop names a renderable style property driven by an animatable value.
type Prop string

const (
	Opacity    Prop = "opacity"
	TranslateY Prop = "translateY"
	Scale      Prop = "scale"
	Rotate     Prop = "rotate"
	Height     Prop = "height"
)

// Style is a read-only reactive projection of one or more Values into
// renderable properties. It is recomputed whenever a contributing Value
// changes; it is never written directly.
type Style struct {
	values map[Prop]*Value
	memo   *reactive.Memo[map[Prop]float64]
}

// NewStyle builds a style over the given property bindings.
func NewStyle(values map[Prop]*Value) *Style {
	s := &Style{values: values}
	s.memo = reactive.NewMemo(func() map[Prop]float64 {
		out := make(map[Prop]float64, len(s.values))
		for p, v := range s.values {
			out[p] = v.Get()
		}
		return out
	})
	return s
}

// Get returns the current property snapshot and subscribes the current
// reactive listener, so renderers recompute per interpolated frame.
func (s *Style) Get() map[Prop]float64 {
	return s.memo.Get()
}

// Peek returns the current property snapshot without subscribing.
func (s *Style) Peek() map[Prop]float64 {
	return s.memo.Peek()
}

// Value returns the animatable value bound to a property.
func (s *Style) Value(p Prop) (*Value, bool) {
	v, ok := s.values[p]
	return v, ok
}

// Props returns the bound property names in stable order.
func (s *Style) Props() []Prop {
	out := make([]Prop, 0, len(s.values))
	for p := range s.values {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
