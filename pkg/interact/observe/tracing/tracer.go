package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/interactor/pkg/interact"
)

const instrumentationName = "github.com/ib-77/interactor/pkg/interact"

// Observer opens one span per unit run. Nested runs become child spans and
// compensations are recorded as events on the organizer's span.
type Observer struct {
	tracer trace.Tracer
}

// New returns an Observer using tp, or the global provider when tp is nil.
func New(tp trace.TracerProvider) *Observer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Observer{tracer: tp.Tracer(instrumentationName)}
}

func (o *Observer) Started(ctx context.Context, r *interact.Record) context.Context {
	ctx, _ = o.tracer.Start(ctx, r.Unit(),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("interact.kind", r.Kind().String()),
			attribute.String("interact.run_id", r.ID().String()),
			attribute.String("interact.context_id", r.Context().ID().String()),
			attribute.Int("interact.depth", r.Depth()),
		))
	return ctx
}

func (o *Observer) Finished(ctx context.Context, r *interact.Record) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	span.SetAttributes(attribute.String("interact.status", r.Status().String()))

	if err := r.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	if errs := r.Context().Errors(); len(errs) > 0 {
		span.SetAttributes(attribute.StringSlice("interact.errors", errs))
	}
}

func (o *Observer) RolledBack(ctx context.Context, r *interact.Record, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("interact.unit", r.Unit()),
		attribute.String("interact.run_id", r.ID().String()),
	}
	if err != nil {
		attrs = append(attrs, attribute.String("error", err.Error()))
	}
	trace.SpanFromContext(ctx).AddEvent("rollback", trace.WithAttributes(attrs...))
}
