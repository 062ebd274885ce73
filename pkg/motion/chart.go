package motion

import "time"

const (
	// DefaultChartMaxHeight is the rendered height of a full (100%) bar.
	DefaultChartMaxHeight = 100

	// chartBarStagger is the per-bar delay step so a chart grows left to
	// right.
	chartBarStagger = 80 * time.Millisecond
)

// ChartBar grows a chart bar to a height proportional to its value: bar i
// waits i × 80ms, then springs to value × maxHeight / 100.
type ChartBar struct {
	rt        Runtime
	index     int
	value     float64
	maxHeight float64

	height *Value
	style  *Style
	life   lifecycle
}

// NewChartBar creates a chart bar trigger for the bar at index. value is a
// percentage (0–100); a non-positive maxHeight falls back to
// DefaultChartMaxHeight.
func NewChartBar(rt Runtime, index int, value, maxHeight float64) *ChartBar {
	if maxHeight <= 0 {
		maxHeight = DefaultChartMaxHeight
	}
	c := &ChartBar{
		rt:        rt,
		index:     index,
		value:     value,
		maxHeight: maxHeight,
		height:    NewValue("height", 0),
	}
	c.style = NewStyle(map[Prop]*Value{Height: c.height})
	return c
}

// Attach grows the bar from 0 to its initial height.
func (c *ChartBar) Attach() {
	if !c.life.attach() {
		return
	}
	c.grow()
}

// SetValue retargets the bar height. Issues no command if the value is
// unchanged.
func (c *ChartBar) SetValue(value float64) {
	if !c.life.active() || value == c.value {
		return
	}
	c.value = value
	c.grow()
}

func (c *ChartBar) grow() {
	target := c.value * c.maxHeight / 100
	wait := time.Duration(c.index) * chartBarStagger
	c.rt.Start(c.height, Delay(wait, Spring(target, SpringSmooth)))
}

// Detach marks the trigger dead.
func (c *ChartBar) Detach() {
	c.life.detach()
}

// Style returns the height style descriptor.
func (c *ChartBar) Style() *Style {
	return c.style
}
