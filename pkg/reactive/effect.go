package reactive

// maxReruns bounds how often an effect may re-run because it wrote to its
// own dependencies while running.
const maxReruns = 100

// Effect represents a reactive side effect that runs when its dependencies change.
//
// Effects run immediately when created, and re-run synchronously whenever
// any signal they read during execution changes. They can return a Cleanup
// function that will be called before the effect re-runs or when the effect
// is disposed.
type Effect struct {
	id uint64
	rt *Runtime

	// fn is the effect function to run.
	fn func() Cleanup

	// cleanup is the cleanup function from the last run.
	cleanup Cleanup

	// sources are the signals this effect depends on.
	sources []*signalBase

	// owner is the Owner that owns this effect.
	owner *Owner

	running  bool
	dirty    bool
	disposed bool
	runs     int
}

// CreateEffect creates an effect owned by owner and runs it once.
// A nil owner creates an unowned effect that lives until Dispose is called.
func (rt *Runtime) CreateEffect(owner *Owner, fn func() Cleanup) *Effect {
	e := &Effect{
		id:    nextID(),
		rt:    rt,
		fn:    fn,
		owner: owner,
	}
	if owner != nil {
		if owner.IsDisposed() {
			e.disposed = true
			return e
		}
		owner.registerEffect(e)
	}
	e.run()
	return e
}

// MarkDirty re-runs the effect.
// Implements the Listener interface.
func (e *Effect) MarkDirty() {
	if e.disposed {
		return
	}
	if e.running {
		e.dirty = true
		return
	}
	e.run()
}

// ID returns the unique identifier for this effect.
// Implements the Listener interface.
func (e *Effect) ID() uint64 {
	return e.id
}

// Runs returns how many times the effect function has executed.
func (e *Effect) Runs() int {
	return e.runs
}

// IsDisposed reports whether the effect has been disposed.
func (e *Effect) IsDisposed() bool {
	return e.disposed
}

// Dispose stops the effect and runs its last cleanup.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	if e.owner != nil {
		e.owner.removeEffect(e)
	}
	e.dispose()
}

// run executes the effect function, re-running while a write made during
// the run dirtied it again.
func (e *Effect) run() {
	for i := 0; i < maxReruns; i++ {
		e.dirty = false
		e.runOnce()
		if !e.dirty || e.disposed {
			return
		}
	}
}

func (e *Effect) runOnce() {
	if e.disposed {
		return
	}

	// Run cleanup from previous run
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.clearSources()

	e.running = true
	old := e.rt.setListener(e)
	defer func() {
		e.rt.setListener(old)
		e.running = false
	}()

	e.runs++
	e.cleanup = e.fn()
}

// addSource records a signal read during the current run.
func (e *Effect) addSource(s *signalBase) {
	for _, existing := range e.sources {
		if existing == s {
			return
		}
	}
	e.sources = append(e.sources, s)
}

func (e *Effect) clearSources() {
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = e.sources[:0]
}

// dispose cleans up the effect.
func (e *Effect) dispose() {
	if e.disposed {
		return
	}
	e.disposed = true

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	e.clearSources()
}
