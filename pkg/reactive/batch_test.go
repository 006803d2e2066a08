package reactive

import "testing"

func TestBatchCoalescesNotifications(t *testing.T) {
	rt := NewRuntime()
	a := NewSignal(rt, 0)
	b := NewSignal(rt, 0)
	runs := 0
	rt.CreateEffect(nil, func() Cleanup {
		a.Get()
		b.Get()
		runs++
		return nil
	})

	rt.Batch(func() {
		a.Set(1)
		b.Set(2)
		if runs != 1 {
			t.Errorf("expected no runs inside batch, got %d", runs-1)
		}
	})
	if runs != 2 {
		t.Errorf("expected exactly one run after batch, got %d", runs-1)
	}
}

func TestNestedBatch(t *testing.T) {
	rt := NewRuntime()
	a := NewSignal(rt, 0)
	runs := 0
	rt.CreateEffect(nil, func() Cleanup {
		a.Get()
		runs++
		return nil
	})

	rt.Batch(func() {
		rt.Batch(func() {
			a.Set(1)
		})
		if runs != 1 {
			t.Errorf("expected inner batch not to flush, got %d runs", runs)
		}
		a.Set(2)
	})
	if runs != 2 {
		t.Errorf("expected 2 runs, got %d", runs)
	}
	if a.Peek() != 2 {
		t.Errorf("expected final value 2, got %d", a.Peek())
	}
}

func TestBatchFlushesOnPanic(t *testing.T) {
	rt := NewRuntime()
	a := NewSignal(rt, 0)
	runs := 0
	rt.CreateEffect(nil, func() Cleanup {
		a.Get()
		runs++
		return nil
	})

	func() {
		defer func() { _ = recover() }()
		rt.Batch(func() {
			a.Set(1)
			panic("boom")
		})
	}()
	if runs != 2 {
		t.Errorf("expected pending update to flush, got %d runs", runs)
	}
}
