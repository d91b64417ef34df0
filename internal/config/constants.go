package config

// Application constants
const (
	// Application Info
	AppName = "penguin-report"

	// Environment variable prefix (PENGUIN_LOGGING_LEVEL, PENGUIN_PATHS_BASE_DIR, ...)
	EnvPrefix = "PENGUIN"
	// EnvConfigFile names an explicit YAML config file
	EnvConfigFile = "PENGUIN_CONFIG_FILE"

	// Input/output files (relative to the base directory)
	DefaultInputFile  = "penguins.csv"
	DefaultOutputFile = "penguin_results.txt"
	DefaultLogFile    = "logs/penguin-report.log"

	// Report defaults
	DefaultSpecies = "Adelie"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "console"

	// Telemetry
	DefaultTraceExporter = "none"
	DefaultSampleRatio   = 1.0
)
