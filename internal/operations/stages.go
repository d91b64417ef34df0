package operations

import (
	"context"
	"log/slog"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"penguincli/internal/dataprocessing"
	"penguincli/internal/exporter"
	"penguincli/internal/validation"
)

// LoadStage reads the input table
type LoadStage struct {
	BaseStage
	loader    *dataprocessing.Loader
	validator *validation.FileValidator
	logger    *slog.Logger
}

// NewLoadStage creates the load step
func NewLoadStage(logger *slog.Logger) *LoadStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadStage{
		BaseStage: NewBaseStage(StageIDLoad, StageNameLoad),
		loader:    dataprocessing.NewLoader(logger),
		validator: validation.NewFileValidator(logger),
		logger:    logger,
	}
}

// Execute loads the request input into state.Table
func (s *LoadStage) Execute(ctx context.Context, state *OperationState) error {
	path := state.Request.Paths.InputFile
	if err := s.validator.ValidateInputFile(path); err != nil {
		return err
	}

	var err error
	if dataprocessing.IsWorkbook(path) {
		state.Table, err = s.loader.LoadXLSX(ctx, path, state.Request.Sheet)
	} else {
		state.Table, err = s.loader.LoadCSV(ctx, path)
	}
	if err != nil {
		return err
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("penguin.rows", state.Table.Rows()),
		attribute.Int("penguin.species_count", state.Table.Len()),
	)
	return nil
}

// AggregateStage computes the mass ratio and the bill depth summary
type AggregateStage struct {
	BaseStage
	logger *slog.Logger
}

// NewAggregateStage creates the aggregation step
func NewAggregateStage(logger *slog.Logger) *AggregateStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &AggregateStage{
		BaseStage: NewBaseStage(StageIDAggregate, StageNameAggregate),
		logger:    logger,
	}
}

// Execute fills state.Ratio and state.BillDepth from state.Table
func (s *AggregateStage) Execute(ctx context.Context, state *OperationState) error {
	if state.Table == nil {
		return NewInvalidStateError(s.ID(), "no table loaded")
	}

	ratio, err := dataprocessing.ComputeMassRatio(state.Table, state.Request.Species)
	if err != nil {
		return err
	}
	state.Ratio = &ratio

	billDepth, err := dataprocessing.ComputeBillDepth(state.Table)
	if err != nil {
		return err
	}
	state.BillDepth = &billDepth

	s.logger.DebugContext(ctx, "Rows skipped during aggregation",
		slog.Int("ratio_skipped", ratio.Skipped),
		slog.Int("bill_depth_skipped", billDepth.Skipped),
		slog.Int("bill_depth_unclassified", billDepth.Unclassified))

	s.logger.InfoContext(ctx, "Statistics computed",
		slog.String("species", ratio.Species),
		slog.Float64("ratio", ratio.Ratio),
		slog.Int("ratio_rows", ratio.Used),
		slog.Int("islands", billDepth.Summary.Len()))

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("penguin.species", ratio.Species),
		attribute.Float64("penguin.ratio", ratio.Ratio),
		attribute.Int("penguin.ratio_rows", ratio.Used),
		attribute.Int("penguin.islands", billDepth.Summary.Len()),
	)
	return nil
}

// ReportStage writes the text report and the optional summary CSV
type ReportStage struct {
	BaseStage
	validator *validation.FileValidator
	csv       *exporter.CSVWriter
	logger    *slog.Logger
}

// NewReportStage creates the report step
func NewReportStage(logger *slog.Logger) *ReportStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportStage{
		BaseStage: NewBaseStage(StageIDReport, StageNameReport),
		validator: validation.NewFileValidator(logger),
		csv:       exporter.NewCSVWriter(logger),
		logger:    logger,
	}
}

// Execute writes the outputs named in the request paths
func (s *ReportStage) Execute(ctx context.Context, state *OperationState) error {
	if state.Ratio == nil || state.BillDepth == nil {
		return NewInvalidStateError(s.ID(), "statistics not computed")
	}
	paths := state.Request.Paths

	if err := s.validator.ValidateOutputDirectory(filepath.Dir(paths.OutputFile)); err != nil {
		return err
	}
	if err := exporter.WriteReport(paths.OutputFile, state.Request.Species, state.Ratio.Ratio, state.BillDepth.Summary); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Report written", slog.String("path", paths.OutputFile))

	if paths.SummaryCSV != "" {
		if err := s.csv.WriteSummary(paths.SummaryCSV, state.BillDepth.Summary); err != nil {
			return err
		}
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("penguin.output", paths.OutputFile),
		attribute.Bool("penguin.summary_csv", paths.SummaryCSV != ""),
	)
	return nil
}
