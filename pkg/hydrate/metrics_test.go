package hydrate

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/hydrate/pkg/reactive"
	"github.com/vango-dev/hydrate/pkg/vdom"
)

func TestMetricsCountNodes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"))
	h, rt, root := setup(t, `<ul><p>x</p><li>a</li></ul>`, WithMetrics(m))

	items := reactive.NewSignal(rt, []string{"a"})
	_, err := h.Hydrate(vdom.Ul(vdom.Li("first"), func() any {
		return vdom.Map(items.Get(), func(s string) *vdom.VNode { return vdom.Li(s) })
	}), root)
	if err != nil {
		t.Fatalf("Hydrate failed: %v", err)
	}

	// <ul>, li a, text a adopted; li first and its text created over <p>.
	if got := testutil.ToFloat64(m.adopted); got != 3 {
		t.Errorf("expected 3 adopted, got %v", got)
	}
	if got := testutil.ToFloat64(m.created); got != 2 {
		t.Errorf("expected 2 created, got %v", got)
	}
	if got := testutil.ToFloat64(m.discarded); got != 1 {
		t.Errorf("expected 1 discarded, got %v", got)
	}

	items.Set([]string{"a", "b"})
	if got := testutil.ToFloat64(m.patches); got != 1 {
		t.Errorf("expected 1 patch, got %v", got)
	}
	if got := testutil.CollectAndCount(m.duration); got != 1 {
		t.Errorf("expected duration histogram to be collected, got %d", got)
	}
}

func TestMetricsCountErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))
	h, _, root := setup(t, `<div><button>x</button></div>`, WithMetrics(m))

	_, err := h.Hydrate(vdom.Div(vdom.Button(vdom.OnClick(1), "x"), struct{}{}), root)
	if err == nil {
		t.Fatal("expected errors")
	}
	if got := testutil.ToFloat64(m.errors.WithLabelValues("H003")); got != 1 {
		t.Errorf("expected 1 H003, got %v", got)
	}
	if got := testutil.ToFloat64(m.errors.WithLabelValues("H004")); got != 1 {
		t.Errorf("expected 1 H004, got %v", got)
	}

	if _, err := h.Hydrate(vdom.Div(), root); !errors.Is(err, ErrAlreadyHydrated) {
		t.Fatalf("expected ErrAlreadyHydrated, got %v", err)
	}
	if got := testutil.ToFloat64(m.errors.WithLabelValues("H005")); got != 1 {
		t.Errorf("expected 1 H005, got %v", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.incAdopted()
	m.incCreated()
	m.incDiscarded()
	m.incPatches()
	m.recordError("H001")
}

func TestHydrateContextWithTracer(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	h, _, root := setup(t, `<p>a</p>`, WithTracer(tracer))

	out, err := h.HydrateContext(context.Background(), vdom.P("b"), root)
	if err != nil {
		t.Fatalf("HydrateContext failed: %v", err)
	}
	assertHTML(t, out, `<p>b</p>`)
}
