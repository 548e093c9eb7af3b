package httpapi

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("hockey-league/internal/interfaces/httpapi")

// startSpan opens "httpapi.Handler.<op>" as a child of the request span.
// Untraced requests get the parent (noop) span back.
func startSpan(r *http.Request, op string) (context.Context, trace.Span) {
	ctx := r.Context()
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}

	return apiTracer.Start(ctx, "httpapi.Handler."+op,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("shl.endpoint", r.URL.Query().Get("endpoint")),
			attribute.String("http.request.method", r.Method),
		),
	)
}
