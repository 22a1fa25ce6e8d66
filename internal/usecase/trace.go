package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var pipelineTracer = otel.Tracer("nba-game-openers-tracker/internal/usecase")
var pipelineNoopSpan = trace.SpanFromContext(context.Background())

func startPipelineSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, pipelineNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, pipelineNoopSpan
	}
	return pipelineTracer.Start(ctx, name)
}
