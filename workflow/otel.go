package workflow

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "workflow"

// startTransitionSpan creates the root span for one transition. The caller
// is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startTransitionSpan(
	ctx context.Context, machineID, documentID, state, event string,
) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "workflow.transition")
	span.SetAttributes(
		attribute.String("machine", machineID),
		attribute.String("document_id", documentID),
		attribute.String("state", state),
		attribute.String("event", event),
	)

	return ctx, span
}

// startActionSpan creates a child span for one transition action. The caller
// is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startActionSpan(
	ctx context.Context, machineID, event string, index int,
) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "workflow.action")
	span.SetAttributes(
		attribute.String("machine", machineID),
		attribute.String("event", event),
		attribute.Int("action_index", index),
	)

	return ctx, span
}
