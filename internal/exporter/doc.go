// Package exporter writes the penguin report outputs.
//
// RenderReport and WriteReport produce the fixed-layout text report: the
// mass ratio of one species followed by one block per island with male and
// female mean bill depth to two decimals. The ratio is printed in its
// shortest round-trip form (0.0, 0.5, 1e-05).
//
// CSVWriter exports tabular data; WriteSummaryCSV writes the island
// summary with the header Island,MaleMeanBillDepth,FemaleMeanBillDepth.
//
// Example usage:
//
//	err := exporter.WriteReport("penguin_results.txt", "Adelie", ratio, summary)
//	err = exporter.WriteSummaryCSV("bill_depth_summary.csv", summary)
package exporter
