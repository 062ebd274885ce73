// Package reactive provides the reactive substrate for the motion library.
//
// It implements fine-grained reactivity: reading a signal inside a tracked
// context (a memo computation or an effect body) automatically subscribes
// the current listener to that signal's changes.
//
// # Core Types
//
// Signal[T] is a reactive value container:
//
//	opacity := reactive.NewSignal(0.0)
//	value := opacity.Get()  // Read (subscribes current listener)
//	opacity.Set(1.0)        // Write (notifies subscribers)
//
// Memo[T] is a cached derived computation:
//
//	style := reactive.NewMemo(func() float64 { return opacity.Get() * 100 })
//
// Effect runs side effects when dependencies change. Unlike a server-driven
// framework there is no render loop here, so effects re-run synchronously
// on the goroutine that wrote the triggering signal:
//
//	reactive.NewEffect(owner, func() reactive.Cleanup {
//	    render(opacity.Get())
//	    return nil
//	})
//
// Owner scopes effects and cleanups to the lifetime of a host element;
// Dispose tears everything down in reverse creation order.
//
// # Thread Safety
//
// All primitives are safe for concurrent use. The tracking context is
// per-goroutine; use WithOwner/WithListener to propagate it explicitly.
package reactive
