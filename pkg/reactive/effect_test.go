package reactive

import (
	"reflect"
	"testing"
)

func TestEffectRunsImmediately(t *testing.T) {
	rt := NewRuntime()
	runs := 0
	e := rt.CreateEffect(nil, func() Cleanup {
		runs++
		return nil
	})

	if runs != 1 {
		t.Errorf("expected effect to run once on creation, got %d", runs)
	}
	if e.Runs() != 1 {
		t.Errorf("expected Runs() = 1, got %d", e.Runs())
	}
}

func TestEffectRerunsSynchronously(t *testing.T) {
	rt := NewRuntime()
	count := NewSignal(rt, 0)
	var seen []int
	rt.CreateEffect(nil, func() Cleanup {
		seen = append(seen, count.Get())
		return nil
	})

	count.Set(1)
	count.Set(2)

	want := []int{0, 1, 2}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("expected %v, got %v", want, seen)
	}
}

func TestEffectCleanup(t *testing.T) {
	rt := NewRuntime()
	owner := NewOwner(nil)
	count := NewSignal(rt, 0)
	cleanups := 0
	rt.CreateEffect(owner, func() Cleanup {
		count.Get()
		return func() { cleanups++ }
	})

	count.Set(1)
	if cleanups != 1 {
		t.Errorf("expected cleanup before re-run, got %d", cleanups)
	}
	owner.Dispose()
	if cleanups != 2 {
		t.Errorf("expected cleanup on dispose, got %d", cleanups)
	}
}

func TestEffectDynamicDependencies(t *testing.T) {
	rt := NewRuntime()
	flag := NewSignal(rt, true)
	a := NewSignal(rt, "a")
	b := NewSignal(rt, "b")
	runs := 0
	rt.CreateEffect(nil, func() Cleanup {
		runs++
		if flag.Get() {
			a.Get()
		} else {
			b.Get()
		}
		return nil
	})

	flag.Set(false)
	if runs != 2 {
		t.Fatalf("expected 2 runs, got %d", runs)
	}
	a.Set("a2")
	if runs != 2 {
		t.Errorf("expected stale dependency to be dropped, got %d runs", runs)
	}
	b.Set("b2")
	if runs != 3 {
		t.Errorf("expected 3 runs, got %d", runs)
	}
}

func TestEffectDisposeStopsUpdates(t *testing.T) {
	rt := NewRuntime()
	count := NewSignal(rt, 0)
	runs := 0
	e := rt.CreateEffect(nil, func() Cleanup {
		count.Get()
		runs++
		return nil
	})

	e.Dispose()
	count.Set(1)
	if runs != 1 {
		t.Errorf("expected no runs after dispose, got %d", runs)
	}
	if !e.IsDisposed() {
		t.Error("expected effect to report disposed")
	}
	if n := count.Subscribers(); n != 0 {
		t.Errorf("expected 0 subscribers after dispose, got %d", n)
	}
}

func TestEffectNotificationOrder(t *testing.T) {
	rt := NewRuntime()
	count := NewSignal(rt, 0)
	var order []string
	first := rt.CreateEffect(nil, func() Cleanup {
		count.Get()
		order = append(order, "first")
		return nil
	})
	_ = first
	rt.CreateEffect(nil, func() Cleanup {
		count.Get()
		order = append(order, "second")
		return nil
	})

	// first re-subscribes after second on every run; creation order must win.
	order = nil
	count.Set(1)
	count.Set(2)

	want := []string{"first", "second", "first", "second"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("expected %v, got %v", want, order)
	}
}

func TestNestedEffectDisposedByParentRerun(t *testing.T) {
	rt := NewRuntime()
	root := NewOwner(nil)
	defer root.Dispose()

	count := NewSignal(rt, 0)
	innerRuns := 0
	var child *Owner
	rt.CreateEffect(root, func() Cleanup {
		count.Get()
		if child != nil {
			child.Dispose()
		}
		child = NewOwner(root)
		rt.CreateEffect(child, func() Cleanup {
			count.Get()
			innerRuns++
			return nil
		})
		return nil
	})

	count.Set(1)
	// The stale inner effect is disposed before it is notified; only the
	// fresh one runs.
	if innerRuns != 2 {
		t.Errorf("expected 2 inner runs, got %d", innerRuns)
	}
	if n := count.Subscribers(); n != 2 {
		t.Errorf("expected 2 subscribers, got %d", n)
	}
}

func TestEffectSelfWriteReruns(t *testing.T) {
	rt := NewRuntime()
	count := NewSignal(rt, 0)
	rt.CreateEffect(nil, func() Cleanup {
		if v := count.Get(); v < 3 {
			count.Set(v + 1)
		}
		return nil
	})

	if got := count.Peek(); got != 3 {
		t.Errorf("expected effect to settle at 3, got %d", got)
	}
}

func TestEffectOnDisposedOwnerNeverRuns(t *testing.T) {
	rt := NewRuntime()
	owner := NewOwner(nil)
	owner.Dispose()

	runs := 0
	e := rt.CreateEffect(owner, func() Cleanup {
		runs++
		return nil
	})
	if runs != 0 {
		t.Errorf("expected 0 runs, got %d", runs)
	}
	if !e.IsDisposed() {
		t.Error("expected effect to be disposed")
	}
}
