// Package config provides configuration management for the penguin report.
// It loads settings from multiple sources, validates them, and resolves the
// file locations a run reads and writes.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file (penguin.yaml, configs/penguin.yaml or $PENGUIN_CONFIG_FILE)
//	3. Default values (lowest priority)
//
// With nothing set, a run reads penguins.csv, reports on the Adelie species
// and writes penguin_results.txt next to the executable.
//
// # Environment Variables
//
// All environment variables follow the pattern PENGUIN_<SECTION>_<FIELD>:
//
//	PENGUIN_LOGGING_LEVEL=debug
//	PENGUIN_PATHS_BASE_DIR=/data/palmer
//	PENGUIN_PATHS_INPUT_FILE=penguins.xlsx
//	PENGUIN_REPORT_SPECIES=Gentoo
//	PENGUIN_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Validation
//
// Values are checked with go-playground/validator struct tags at load time;
// a failure is returned as a CONFIG AppError naming every offending field.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := cfg.ResolvePaths()
package config
