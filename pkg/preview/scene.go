package preview

import (
	"strconv"
	"time"

	"github.com/vango-dev/motion/pkg/motion"
	"github.com/vango-dev/motion/pkg/protocol"
	"github.com/vango-dev/motion/pkg/reactive"
)

// Demo scene shape: a schedule card with a task list, a progress ring, a
// checkmark, a score readout, a weekly chart, and a celebration burst.
const (
	demoTaskCount = 4
	demoBarCount  = 7
)

// demoBarValues are the initial chart heights, as percentages.
var demoBarValues = [demoBarCount]float64{40, 65, 30, 80, 55, 90, 70}

// DemoScene wires every trigger into one interactive preview. Client
// events drive the triggers; the triggers drive the runtime.
type DemoScene struct {
	owner *reactive.Owner
	reg   *StreamRuntime

	card    *motion.SlideUpFade
	title   *motion.FadeIn
	tasks   []*motion.StaggeredEntry
	pop     *motion.ScalePop
	ring    *motion.Progress
	check   *motion.CheckToggle
	burst   *motion.Celebration
	mode    *motion.ModeTransition
	bars    []*motion.ChartBar
	score   *motion.ScoreCounter
	checked bool
	popped  bool
}

// NewDemoScene builds the scene and attaches all triggers. Commands go
// through rt, which may wrap reg (e.g. a timeline recorder); Scene
// declarations always come from reg. Attach-time commands land in reg's
// buffer until a session flushes them.
func NewDemoScene(rt motion.Runtime, reg *StreamRuntime, clock motion.Clock) *DemoScene {
	s := &DemoScene{
		owner: reactive.NewOwner(nil),
		reg:   reg,
	}

	s.card = motion.NewSlideUpFade(rt, 0, 20)
	s.title = motion.NewFadeIn(rt, 100*time.Millisecond)
	for i := 0; i < demoTaskCount; i++ {
		s.tasks = append(s.tasks, motion.NewStaggeredEntry(rt, i, 0))
	}
	s.pop = motion.NewScalePop(rt, false)
	s.ring = motion.NewProgress(rt, 0.6, 0)
	s.check = motion.NewCheckToggle(rt, false)
	s.burst = motion.NewCelebration(rt, clock)
	s.mode = motion.NewModeTransition(rt, "normal")
	for i, v := range demoBarValues {
		s.bars = append(s.bars, motion.NewChartBar(rt, i, v, 0))
	}
	s.score = motion.NewScoreCounter(rt, 480, 0)

	motion.Mount(s.owner, s.card)
	motion.Mount(s.owner, s.title)
	for _, task := range s.tasks {
		motion.Mount(s.owner, task)
	}
	motion.Mount(s.owner, s.pop)
	motion.Mount(s.owner, s.ring)
	motion.Mount(s.owner, s.check)
	motion.Mount(s.owner, s.burst)
	motion.Mount(s.owner, s.mode)
	for _, bar := range s.bars {
		motion.Mount(s.owner, bar)
	}
	motion.Mount(s.owner, s.score)

	// Values that rest until an event still need Scene declarations.
	reg.Register(mustStyleValue(s.pop.Style(), motion.Scale))
	reg.Register(mustStyleValue(s.check.Style(), motion.Scale))
	reg.Register(mustStyleValue(s.check.Style(), motion.Rotate))
	reg.Register(mustStyleValue(s.burst.Style(), motion.Opacity))
	reg.Register(mustStyleValue(s.burst.Style(), motion.Scale))
	reg.Register(s.mode.ColorIndex())
	reg.Register(s.mode.Scale())

	return s
}

func mustStyleValue(style *motion.Style, p motion.Prop) *motion.Value {
	v, ok := style.Value(p)
	if !ok {
		panic("preview: style missing property " + string(p))
	}
	return v
}

// HandleEvent routes a client event to its trigger. Unknown events are
// ignored; the preview client is trusted but may be newer than the host.
func (s *DemoScene) HandleEvent(ev *protocol.Event) {
	switch ev.Name {
	case "toggle-check":
		s.checked = !s.checked
		s.check.SetChecked(s.checked)
		if s.checked {
			s.burst.Celebrate()
		}
	case "pop":
		s.popped = !s.popped
		s.pop.SetTrigger(s.popped)
	case "set-progress":
		s.ring.SetTarget(ev.Value)
	case "set-score":
		s.score.SetTarget(ev.Value)
	case "set-mode":
		s.mode.SetMode(ev.Key)
	case "set-bar":
		// Key carries the bar index; Value the new percentage.
		if idx, err := strconv.Atoi(ev.Key); err == nil && idx >= 0 && idx < len(s.bars) {
			s.bars[idx].SetValue(ev.Value)
		}
	case "celebrate":
		s.burst.Celebrate()
	}
}

// Close disposes the scene, detaching every trigger.
func (s *DemoScene) Close() {
	s.owner.Dispose()
}
