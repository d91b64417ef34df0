package operations

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"penguincli/internal/infrastructure"
)

const (
	TracerName = "penguincli.operation"

	// SpanPrefix prefixes the run span and every step span
	SpanPrefix = "penguin."
)

// OperationTracer provides OpenTelemetry instrumentation for report runs
type OperationTracer struct {
	tracer  trace.Tracer
	metrics *infrastructure.RunMetrics
}

// NewOperationTracer creates a tracer on the telemetry providers. A nil
// telemetry gives a tracer that records nothing.
func NewOperationTracer(tel *infrastructure.Telemetry) (*OperationTracer, error) {
	if tel == nil {
		return &OperationTracer{tracer: noop.NewTracerProvider().Tracer(TracerName)}, nil
	}

	metrics, err := infrastructure.NewRunMetrics(tel.Meter)
	if err != nil {
		return nil, err
	}

	return &OperationTracer{
		tracer:  tel.TracerProvider.Tracer(TracerName),
		metrics: metrics,
	}, nil
}

// TraceOperationExecution creates the root span of a run
func (ot *OperationTracer) TraceOperationExecution(ctx context.Context, operationID string, req OperationRequest) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("operation.id", operationID),
		attribute.String("penguin.species", req.Species),
	}
	if req.Paths != nil {
		attrs = append(attrs,
			attribute.String("penguin.input", req.Paths.InputFile),
			attribute.String("penguin.output", req.Paths.OutputFile))
	}

	return ot.tracer.Start(ctx, SpanPrefix+"run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// TraceStageExecution creates a child span for one step
func (ot *OperationTracer) TraceStageExecution(ctx context.Context, operationID, stepID string) (context.Context, trace.Span) {
	return ot.tracer.Start(ctx, SpanPrefix+stepID,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("operation.id", operationID),
			attribute.String("step.id", stepID),
		),
	)
}

// RecordStageCompletion ends a step span and records its duration
func (ot *OperationTracer) RecordStageCompletion(ctx context.Context, span trace.Span, stepID string, duration time.Duration, err error) {
	span.SetAttributes(attribute.Float64("step.duration_seconds", duration.Seconds()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()

	if ot.metrics != nil {
		ot.metrics.RecordStage(ctx, stepID, duration)
	}
}

// RecordOperationCompletion ends the run span and records the row
// accounting of whatever the steps produced.
func (ot *OperationTracer) RecordOperationCompletion(ctx context.Context, span trace.Span, state *OperationState) {
	span.SetAttributes(
		attribute.String("operation.status", string(state.Status)),
		attribute.Float64("operation.duration_seconds", state.Duration().Seconds()),
	)
	if state.Error != nil {
		span.SetStatus(codes.Error, state.Error.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()

	if ot.metrics == nil {
		return
	}
	if state.Table != nil {
		ot.metrics.RecordLoad(ctx, state.Table.Rows(), state.Table.Len())
	}
	if state.Ratio != nil {
		ot.metrics.RecordRatioRows(ctx, state.Ratio.Species, state.Ratio.Used, state.Ratio.Skipped)
	}
	if state.BillDepth != nil {
		ot.metrics.RecordBillDepthRows(ctx, state.BillDepth.Used,
			state.BillDepth.Skipped+state.BillDepth.Unclassified, state.BillDepth.Summary.Len())
	}
}
