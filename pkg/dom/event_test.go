package dom

import "testing"

func TestClickBubbles(t *testing.T) {
	doc := NewDocument()
	root, _ := doc.ParseElement(`<div><button>ok</button></div>`)
	btn := FirstElementChild(root)

	var order []string
	doc.AddEventListener(btn, "click", func(e *Event) {
		order = append(order, "button")
		if e.Target != btn || e.CurrentTarget != btn {
			t.Error("unexpected target on button listener")
		}
	})
	doc.AddEventListener(root, "click", func(e *Event) {
		order = append(order, "div")
		if e.Target != btn || e.CurrentTarget != root {
			t.Error("unexpected target on div listener")
		}
	})

	if n := doc.Click(btn); n != 2 {
		t.Errorf("expected 2 listeners invoked, got %d", n)
	}
	if len(order) != 2 || order[0] != "button" || order[1] != "div" {
		t.Errorf("unexpected order %v", order)
	}
}

func TestStopPropagation(t *testing.T) {
	doc := NewDocument()
	root, _ := doc.ParseElement(`<div><button>ok</button></div>`)
	btn := FirstElementChild(root)

	outer := 0
	doc.AddEventListener(btn, "click", func(e *Event) { e.StopPropagation() })
	doc.AddEventListener(root, "click", func(*Event) { outer++ })

	doc.Click(btn)
	if outer != 0 {
		t.Errorf("expected propagation to stop, outer ran %d times", outer)
	}
}

func TestRemoveEventListener(t *testing.T) {
	doc := NewDocument()
	btn := doc.CreateElement("button")

	calls := 0
	fn := func(*Event) { calls++ }
	remove := doc.AddEventListener(btn, "click", fn)
	doc.AddEventListener(btn, "click", fn)
	if n := doc.ListenerCount(btn, "click"); n != 2 {
		t.Fatalf("expected 2 listeners, got %d", n)
	}

	remove()
	remove()
	doc.Click(btn)
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestDispatchFiltersByType(t *testing.T) {
	doc := NewDocument()
	in := doc.CreateElement("input")

	inputs := 0
	doc.AddEventListener(in, "input", func(*Event) { inputs++ })
	doc.Click(in)
	doc.Dispatch(in, "input")
	if inputs != 1 {
		t.Errorf("expected 1 input event, got %d", inputs)
	}
}
