// Package motion provides declarative animation presets and state-transition
// triggers for server-driven UIs.
//
// Triggers never interpolate. Each trigger wires an event (attach, input
// change, a manual call) to one or more animatable Values by building a
// declarative Command tree (Snap, Timing, Spring, Sequence, Delay) and
// handing it to an injected Runtime. The runtime (a browser client, a test
// recorder) owns the actual spring solving and frame scheduling.
//
// # Presets
//
// Two fixed tables parameterize every command: spring presets (damping,
// stiffness) and timing presets (duration). See SpringBouncy, TimingNormal
// and friends.
//
// # Lifecycle
//
// Triggers are explicit event handlers, not implicit reactive hooks:
//
//	fade := motion.NewFadeIn(rt, 200*time.Millisecond)
//	fade.Attach()                  // first render
//	style := fade.Style()          // bind to the rendered element
//	defer fade.Detach()            // unmount
//
// Mount ties Attach/Detach to a reactive.Owner so unmount tears the
// trigger down automatically.
//
// Each Value is exclusively owned by the trigger that created it; starting
// a new command on a Value replaces any in-flight animation (runtime
// semantics). Triggers are meant to be driven from the host's UI goroutine
// and are not safe for concurrent use, with one exception: Celebration
// guards its delayed reset internally because the Clock callback may fire
// on another goroutine.
package motion
