package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestStartSpan_NoParentIsNoop(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api?endpoint=standings", nil)
	got, span := startSpan(r, "Standings")
	defer span.End()

	if got != r.Context() {
		t.Fatalf("expected context to be returned unchanged without a parent span")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected noop span without a parent span")
	}
}

func TestStartSpan_KeepsRemoteParent(t *testing.T) {
	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{2},
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})
	ctx := trace.ContextWithRemoteSpanContext(context.Background(), parent)
	r := httptest.NewRequest(http.MethodGet, "/api?endpoint=admin/teams", nil).WithContext(ctx)

	got, span := startSpan(r, "ListTeams")
	defer span.End()

	if trace.SpanContextFromContext(got).TraceID() != parent.TraceID() {
		t.Fatalf("expected child span to stay in the parent trace")
	}
}
