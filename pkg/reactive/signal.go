package reactive

import "reflect"

// signalBase provides type-erased subscriber management.
type signalBase struct {
	id uint64

	// subs are the listeners subscribed to this signal.
	subs []Listener
}

// subscribe adds a listener to this signal's subscribers.
// Deduplicates by listener ID to prevent double-subscription.
func (s *signalBase) subscribe(l Listener) {
	if l == nil {
		return
	}
	lid := l.ID()
	for _, existing := range s.subs {
		if existing.ID() == lid {
			return
		}
	}
	s.subs = append(s.subs, l)
}

// unsubscribe removes a listener from this signal's subscribers.
func (s *signalBase) unsubscribe(l Listener) {
	if l == nil {
		return
	}
	lid := l.ID()
	for i, existing := range s.subs {
		if existing.ID() == lid {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// snapshot copies the subscribers so notification can mutate the list.
func (s *signalBase) snapshot() []Listener {
	subs := make([]Listener, len(s.subs))
	copy(subs, s.subs)
	return subs
}

// Signal is a reactive value container.
// Reading a Signal inside a tracked computation subscribes that
// computation to future changes.
type Signal[T any] struct {
	rt   *Runtime
	base signalBase

	// value is the current signal value.
	value T

	// equal decides whether a write changed the value.
	// If nil, uses default equality checking.
	equal func(T, T) bool
}

// NewSignal creates a new signal with the given initial value.
func NewSignal[T any](rt *Runtime, initial T) *Signal[T] {
	return &Signal[T]{
		rt:    rt,
		base:  signalBase{id: nextID()},
		value: initial,
	}
}

// Get returns the current value and subscribes the current listener.
func (s *Signal[T]) Get() T {
	if l := s.rt.listener; l != nil {
		s.base.subscribe(l)
		if e, ok := l.(*Effect); ok {
			e.addSource(&s.base)
		}
	}
	return s.value
}

// Read returns the current value as an untyped value, subscribing the
// current listener. It lets a signal be used directly as delta content.
func (s *Signal[T]) Read() any {
	return s.Get()
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set updates the signal's value and notifies subscribers if the value
// changed. Notification completes before Set returns.
func (s *Signal[T]) Set(value T) {
	if s.equals(s.value, value) {
		return
	}
	s.value = value
	s.rt.notify(s.base.snapshot())
}

// Update reads and updates the signal's value in one step.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// WithEquals returns the signal configured with a custom equality function.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.base.id
}

// Subscribers returns the number of listeners currently subscribed.
func (s *Signal[T]) Subscribers() int {
	return len(s.base.subs)
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == for common comparable types and
// reflect.DeepEqual for the rest.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int64:
		return av == any(b).(int64)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}
