package hydrate

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/hydrate/pkg/vdom"
)

func (h *Hydrator) startSpan(ctx context.Context, name string, delta *vdom.VNode) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{}
	if delta != nil {
		attrs = append(attrs,
			attribute.String("hydrate.kind", delta.Kind.String()),
			attribute.String("hydrate.tag", delta.Tag),
		)
	}
	return h.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

func endSpan(span trace.Span, stats Stats, err error) {
	span.SetAttributes(
		attribute.Int("hydrate.adopted", stats.Adopted),
		attribute.Int("hydrate.created", stats.Created),
		attribute.Int("hydrate.discarded", stats.Discarded),
		attribute.Int("hydrate.regions", stats.Regions),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
