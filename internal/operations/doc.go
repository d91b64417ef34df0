// Package operations runs the penguin report as a sequence of steps.
//
// A Manager executes the steps held by a Registry in registration order
// against one OperationState. The report manager registers three steps:
//
//	load       read the input table (CSV or XLSX)
//	aggregate  compute the mass ratio and the bill depth summary
//	report     write the text report and the optional summary CSV
//
// Each run gets a trace ID, a root span "penguin.run" and one child span
// per step. Step durations and row counts are recorded as run metrics when
// telemetry is configured.
//
//	state, err := operations.Run(ctx, cfg, paths, tel, logger)
package operations
