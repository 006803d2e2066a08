package hydrate

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/hydrate/pkg/vdom"
)

// Option configures a Hydrator.
type Option func(*Hydrator)

// WithLogger sets the logger. Recovered mismatches are logged at debug
// level, patch failures at error level.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hydrator) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithMetrics records hydration counters on m.
func WithMetrics(m *Metrics) Option {
	return func(h *Hydrator) {
		h.metrics = m
	}
}

// WithTracer sets the tracer used by HydrateContext.
func WithTracer(tracer trace.Tracer) Option {
	return func(h *Hydrator) {
		if tracer != nil {
			h.tracer = tracer
		}
	}
}

// WithEventPrefix changes the prop prefix that marks event handlers.
// The default is "on".
func WithEventPrefix(prefix string) Option {
	return func(h *Hydrator) {
		if prefix != "" {
			h.eventPrefix = prefix
		}
	}
}

// WithErrorHandler receives errors raised after Hydrate returned, while a
// region patches in response to a dependency change.
func WithErrorHandler(fn func(error)) Option {
	return func(h *Hydrator) {
		h.onError = fn
	}
}

func defaultEventPrefix() string {
	return vdom.EventPrefix
}
