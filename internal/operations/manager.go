package operations

import (
	"context"
	"log/slog"
	"time"

	"penguincli/internal/config"
	"penguincli/internal/infrastructure"
)

// Manager runs the registered steps of a report operation in order
type Manager struct {
	registry *Registry
	tracer   *OperationTracer
	logger   *slog.Logger
}

// NewManager creates a manager; nil tracer and logger fall back to a no-op
// tracer and slog.Default.
func NewManager(registry *Registry, tracer *OperationTracer, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer, _ = NewOperationTracer(nil)
	}
	return &Manager{
		registry: registry,
		tracer:   tracer,
		logger:   logger.With(slog.String("component", "operations")),
	}
}

// NewReportManager creates a manager with the load, aggregate and report steps
func NewReportManager(tel *infrastructure.Telemetry, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tracer, err := NewOperationTracer(tel)
	if err != nil {
		return nil, err
	}

	registry := NewRegistry()
	for _, step := range []Step{
		NewLoadStage(logger),
		NewAggregateStage(logger),
		NewReportStage(logger),
	} {
		if err := registry.Register(step); err != nil {
			return nil, err
		}
	}

	return NewManager(registry, tracer, logger), nil
}

// Run executes one report run for the given configuration
func Run(ctx context.Context, cfg *config.Config, paths *config.Paths, tel *infrastructure.Telemetry, logger *slog.Logger) (*OperationState, error) {
	m, err := NewReportManager(tel, logger)
	if err != nil {
		return nil, err
	}
	return m.Execute(ctx, NewOperationRequest(cfg, paths))
}

// Execute runs every registered step against a fresh operation state. The
// state is returned even on failure so callers can inspect completed steps.
func (m *Manager) Execute(ctx context.Context, req OperationRequest) (*OperationState, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx = infrastructure.EnsureTraceID(ctx)
	state := NewOperationState(infrastructure.GetTraceID(ctx), req)
	state.Start()

	ctx, span := m.tracer.TraceOperationExecution(ctx, state.ID, req)
	defer func() { m.tracer.RecordOperationCompletion(ctx, span, state) }()

	m.logOperationStart(ctx, state)

	for _, step := range m.registry.List() {
		if err := ctx.Err(); err != nil {
			opErr := NewCancellationError(step.ID(), err)
			state.Cancel(opErr)
			m.logOperationError(ctx, state, opErr)
			return state, opErr
		}

		if err := m.executeStep(ctx, state, step); err != nil {
			opErr := NewExecutionError(step.ID(), err)
			state.Fail(opErr)
			m.logOperationError(ctx, state, opErr)
			return state, opErr
		}
	}

	state.Complete()
	m.logOperationComplete(ctx, state)
	return state, nil
}

func (m *Manager) executeStep(ctx context.Context, state *OperationState, step Step) error {
	stepState := NewStepState(step.ID(), step.Name())
	state.Steps = append(state.Steps, stepState)

	stepCtx, span := m.tracer.TraceStageExecution(ctx, state.ID, step.ID())
	stepState.Start()
	m.logStageStart(stepCtx, state.ID, step.ID())

	start := time.Now()
	err := step.Execute(stepCtx, state)
	duration := time.Since(start)

	m.tracer.RecordStageCompletion(stepCtx, span, step.ID(), duration, err)

	if err != nil {
		stepState.Fail(err)
		m.logStageError(stepCtx, state.ID, step.ID(), err)
		return err
	}

	stepState.Complete()
	m.logStageComplete(stepCtx, state.ID, step.ID(), duration)
	return nil
}

func validateRequest(req OperationRequest) error {
	if req.Paths == nil {
		return NewValidationError("", "request has no paths")
	}
	if req.Paths.InputFile == "" || req.Paths.OutputFile == "" {
		return NewValidationError("", "input and output files are required")
	}
	if req.Species == "" {
		return NewValidationError("", "species is required")
	}
	return nil
}
