package reactive

import "sort"

// Runtime holds the tracking state shared by signals and effects.
type Runtime struct {
	// listener is what's currently tracking dependencies.
	// nil means no tracking (reads don't create subscriptions).
	listener Listener

	// batchDepth tracks nested Batch() calls.
	batchDepth int

	// pending accumulates listeners to notify when the batch completes.
	pending []Listener
}

// NewRuntime creates an empty tracking context.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// setListener sets the current listener and returns the previous one.
func (rt *Runtime) setListener(l Listener) Listener {
	old := rt.listener
	rt.listener = l
	return old
}

// Tracking reports whether a computation is currently tracking reads.
func (rt *Runtime) Tracking() bool {
	return rt.listener != nil
}

// Untracked runs fn without tracking signal reads as dependencies.
func (rt *Runtime) Untracked(fn func()) {
	old := rt.setListener(nil)
	defer rt.setListener(old)
	fn()
}

// Batch groups signal updates. Affected listeners are collected,
// deduplicated and notified once when the outermost batch completes.
func (rt *Runtime) Batch(fn func()) {
	rt.batchDepth++
	defer func() {
		rt.batchDepth--
		if rt.batchDepth == 0 {
			rt.flush()
		}
	}()
	fn()
}

// notify delivers a change to subs, or queues it while batching.
func (rt *Runtime) notify(subs []Listener) {
	if rt.batchDepth > 0 {
		rt.pending = append(rt.pending, subs...)
		return
	}
	deliver(subs)
}

// flush notifies every listener queued during the batch.
func (rt *Runtime) flush() {
	updates := rt.pending
	rt.pending = nil
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	unique := make([]Listener, 0, len(updates))
	for _, l := range updates {
		if id := l.ID(); !seen[id] {
			seen[id] = true
			unique = append(unique, l)
		}
	}
	deliver(unique)
}

// deliver marks listeners dirty in creation order.
func deliver(subs []Listener) {
	sort.SliceStable(subs, func(i, j int) bool { return subs[i].ID() < subs[j].ID() })
	for _, l := range subs {
		l.MarkDirty()
	}
}
