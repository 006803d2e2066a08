// Package reactive provides the reactive values that drive hydrated
// regions.
//
// Reading a signal inside a tracked computation subscribes that
// computation; writing the signal notifies every subscriber synchronously,
// inside the write call.
//
// # Core Types
//
// Runtime is the explicit tracking context. It records which computation
// is currently running and whether notifications are batched. Signals and
// effects belong to one Runtime; there is no process-wide state.
//
//	rt := reactive.NewRuntime()
//	count := reactive.NewSignal(rt, 0)
//	value := count.Get()  // Read (subscribes current listener)
//	count.Set(5)          // Write (notifies subscribers)
//
// Effect re-runs whenever a signal it read changes:
//
//	rt.CreateEffect(owner, func() reactive.Cleanup {
//	    fmt.Println("Count is:", count.Get())
//	    return nil
//	})
//
// Owner is a disposal scope. Disposing an owner disposes its effects,
// child owners and cleanups.
//
// # Batching
//
//	rt.Batch(func() {
//	    a.Set(1)
//	    b.Set(2)
//	})  // Each affected effect runs once after the batch
//
// # Threading
//
// A Runtime and everything created with it are confined to one goroutine.
// Notification order is creation order of the notified effects.
package reactive
