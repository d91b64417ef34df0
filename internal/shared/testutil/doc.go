// Package testutil provides helpers shared by package tests: a buffered
// slog handler for asserting on log output and penguin table fixtures.
//
//	logger, handler := testutil.NewTestLogger(t)
//	path := testutil.WriteCSV(t, t.TempDir(), testutil.SampleCSV)
//	...
//	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Table loaded")
package testutil
