package motion

import "github.com/vango-dev/motion/pkg/reactive"

// Value is a mutable animatable cell holding a number. A Value is owned
// exclusively by the trigger instance that created it: only that trigger's
// logic (via its Runtime) writes it, while the rendering layer reads it
// reactively during interpolation.
type Value struct {
	name string
	sig  *reactive.Signal[float64]
}

// NewValue creates an animatable value with the given name and resting value.
// The name identifies the value in recordings and on the wire; it does not
// need to be globally unique.
func NewValue(name string, initial float64) *Value {
	return &Value{
		name: name,
		sig:  reactive.NewSignal(initial),
	}
}

// Name returns the value's name.
func (v *Value) Name() string {
	return v.name
}

// Get returns the current value and subscribes the current reactive
// listener, so styles and effects recompute as the runtime interpolates.
func (v *Value) Get() float64 {
	return v.sig.Get()
}

// Peek returns the current value without subscribing.
func (v *Value) Peek() float64 {
	return v.sig.Peek()
}

// Set writes the value. Intended for Runtime implementations propagating
// interpolated frames; triggers retarget values through commands instead.
func (v *Value) Set(f float64) {
	v.sig.Set(f)
}
