package operations

import (
	"penguincli/internal/config"
)

// Report stage identifiers
const (
	StageIDLoad      = "load"
	StageIDAggregate = "aggregate"
	StageIDReport    = "report"
)

// Report stage names
const (
	StageNameLoad      = "Table Loading"
	StageNameAggregate = "Statistics"
	StageNameReport    = "Report Writing"
)

// OperationRequest describes one report run
type OperationRequest struct {
	Species string
	Sheet   string // xlsx input only
	Paths   *config.Paths
}

// NewOperationRequest builds a request from loaded configuration
func NewOperationRequest(cfg *config.Config, paths *config.Paths) OperationRequest {
	return OperationRequest{
		Species: cfg.Report.Species,
		Sheet:   cfg.Report.Sheet,
		Paths:   paths,
	}
}
