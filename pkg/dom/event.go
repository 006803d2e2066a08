package dom

import "golang.org/x/net/html"

// Event is a dispatched DOM event.
type Event struct {
	Type          string
	Target        *html.Node
	CurrentTarget *html.Node

	stopped bool
}

// StopPropagation prevents the event from bubbling past the current node.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Listener handles a dispatched event.
type Listener func(*Event)

type registration struct {
	id    uint64
	event string
	fn    Listener
}

// AddEventListener attaches fn to n for events of the given type and
// returns a function that detaches it. Adding the same function twice
// registers two listeners.
func (d *Document) AddEventListener(n *html.Node, event string, fn Listener) (remove func()) {
	d.nextID++
	reg := &registration{id: d.nextID, event: event, fn: fn}
	d.listeners[n] = append(d.listeners[n], reg)
	return func() { d.removeRegistration(n, reg.id) }
}

func (d *Document) removeRegistration(n *html.Node, id uint64) {
	regs := d.listeners[n]
	for i, r := range regs {
		if r.id == id {
			regs = append(regs[:i], regs[i+1:]...)
			break
		}
	}
	if len(regs) == 0 {
		delete(d.listeners, n)
		return
	}
	d.listeners[n] = regs
}

// ListenerCount returns how many listeners for event are attached to n.
func (d *Document) ListenerCount(n *html.Node, event string) int {
	count := 0
	for _, r := range d.listeners[n] {
		if r.event == event {
			count++
		}
	}
	return count
}

// Dispatch delivers an event of the given type to target and then to each
// ancestor until propagation stops. It returns the number of listeners
// invoked.
func (d *Document) Dispatch(target *html.Node, event string) int {
	e := &Event{Type: event, Target: target}
	invoked := 0
	for n := target; n != nil && !e.stopped; n = n.Parent {
		e.CurrentTarget = n
		// Copy so listeners may detach themselves while running.
		regs := append([]*registration(nil), d.listeners[n]...)
		for _, r := range regs {
			if r.event != event {
				continue
			}
			r.fn(e)
			invoked++
		}
	}
	return invoked
}

// Click dispatches a click event at n.
func (d *Document) Click(n *html.Node) int {
	return d.Dispatch(n, "click")
}
