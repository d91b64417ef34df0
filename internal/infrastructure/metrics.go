package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Row outcomes recorded by the aggregation counters
const (
	OutcomeUsed    = "used"
	OutcomeSkipped = "skipped"
)

// RunMetrics holds the instruments recorded by one report run
type RunMetrics struct {
	RowsLoaded     metric.Int64Counter
	SpeciesLoaded  metric.Int64Counter
	RatioRows      metric.Int64Counter
	BillDepthRows  metric.Int64Counter
	IslandsReported metric.Int64Counter
	StageDuration  metric.Float64Histogram
}

// NewRunMetrics creates the run instruments on meter
func NewRunMetrics(meter metric.Meter) (*RunMetrics, error) {
	rowsLoaded, err := meter.Int64Counter(
		"penguin_rows_loaded",
		metric.WithDescription("Number of data rows read from the input table"),
	)
	if err != nil {
		return nil, err
	}

	speciesLoaded, err := meter.Int64Counter(
		"penguin_species_loaded",
		metric.WithDescription("Number of distinct species in the input table"),
	)
	if err != nil {
		return nil, err
	}

	ratioRows, err := meter.Int64Counter(
		"penguin_ratio_rows",
		metric.WithDescription("Rows considered for the mass ratio, by outcome"),
	)
	if err != nil {
		return nil, err
	}

	billDepthRows, err := meter.Int64Counter(
		"penguin_bill_depth_rows",
		metric.WithDescription("Rows considered for the bill depth summary, by outcome"),
	)
	if err != nil {
		return nil, err
	}

	islands, err := meter.Int64Counter(
		"penguin_islands_reported",
		metric.WithDescription("Number of islands in the bill depth summary"),
	)
	if err != nil {
		return nil, err
	}

	stageDuration, err := meter.Float64Histogram(
		"penguin_stage_duration",
		metric.WithDescription("Pipeline stage duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &RunMetrics{
		RowsLoaded:     rowsLoaded,
		SpeciesLoaded:  speciesLoaded,
		RatioRows:      ratioRows,
		BillDepthRows:  billDepthRows,
		IslandsReported: islands,
		StageDuration:  stageDuration,
	}, nil
}

// RecordLoad records the size of the loaded table
func (m *RunMetrics) RecordLoad(ctx context.Context, rows, species int) {
	m.RowsLoaded.Add(ctx, int64(rows))
	m.SpeciesLoaded.Add(ctx, int64(species))
}

// RecordRatioRows records how many rows the ratio used and skipped
func (m *RunMetrics) RecordRatioRows(ctx context.Context, species string, used, skipped int) {
	sp := attribute.String("species", species)
	m.RatioRows.Add(ctx, int64(used), metric.WithAttributes(sp, attribute.String("outcome", OutcomeUsed)))
	m.RatioRows.Add(ctx, int64(skipped), metric.WithAttributes(sp, attribute.String("outcome", OutcomeSkipped)))
}

// RecordBillDepthRows records how many rows the bill depth summary used and skipped
func (m *RunMetrics) RecordBillDepthRows(ctx context.Context, used, skipped, islands int) {
	m.BillDepthRows.Add(ctx, int64(used), metric.WithAttributes(attribute.String("outcome", OutcomeUsed)))
	m.BillDepthRows.Add(ctx, int64(skipped), metric.WithAttributes(attribute.String("outcome", OutcomeSkipped)))
	m.IslandsReported.Add(ctx, int64(islands))
}

// RecordStage records the duration of a named pipeline stage
func (m *RunMetrics) RecordStage(ctx context.Context, stage string, d time.Duration) {
	m.StageDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("stage", stage)))
}
