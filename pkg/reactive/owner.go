package reactive

// Owner is a disposal scope for effects and cleanups.
//
// Owners form a hierarchy. Disposing an Owner disposes its child owners,
// then its effects, then runs its cleanups in reverse registration order.
type Owner struct {
	id uint64

	// parent is nil for a root Owner.
	parent *Owner

	children []*Owner
	effects  []*Effect

	// cleanups are manual cleanup functions registered via OnCleanup.
	cleanups []func()

	disposed bool
}

// NewOwner creates a new Owner with the given parent.
// If parent is nil, creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		if parent.disposed {
			o.disposed = true
			return o
		}
		parent.children = append(parent.children, o)
	}
	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil if this is a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed returns true if this Owner has been disposed.
func (o *Owner) IsDisposed() bool {
	return o.disposed
}

// OnCleanup registers a cleanup function to run when this Owner is disposed.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed {
		// Already disposed, run cleanup immediately
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
}

func (o *Owner) registerEffect(e *Effect) {
	o.effects = append(o.effects, e)
}

func (o *Owner) removeEffect(e *Effect) {
	for i, existing := range o.effects {
		if existing == e {
			o.effects = append(o.effects[:i], o.effects[i+1:]...)
			return
		}
	}
}

func (o *Owner) removeChild(child *Owner) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// Dispose disposes this Owner and everything it owns.
// Calling Dispose more than once has no effect.
func (o *Owner) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	// Dispose children in reverse order
	children := o.children
	o.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	effects := o.effects
	o.effects = nil
	for _, e := range effects {
		e.dispose()
	}

	// Run cleanups in reverse order
	cleanups := o.cleanups
	o.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
