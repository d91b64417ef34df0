package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains every file location a run touches, fully resolved.
type Paths struct {
	BaseDir     string
	InputFile   string
	OutputFile  string
	SummaryCSV  string // empty when the export is disabled
	MetricsFile string // empty when the textfile is disabled
	LogFile     string
}

// ExecutableDir returns the directory of the running executable with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return filepath.Dir(exe), nil
}

// ResolvePaths turns the configured names into absolute paths. Relative
// names are joined to BaseDir; an unset BaseDir means the executable directory.
func (c *Config) ResolvePaths() (*Paths, error) {
	baseDir := c.Paths.BaseDir
	if baseDir == "" {
		exeDir, err := ExecutableDir()
		if err != nil {
			return nil, err
		}
		baseDir = exeDir
	}

	baseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory %s: %w", c.Paths.BaseDir, err)
	}

	p := &Paths{BaseDir: baseDir}
	p.InputFile = p.resolve(c.Paths.InputFile)
	p.OutputFile = p.resolve(c.Paths.OutputFile)
	p.SummaryCSV = p.resolve(c.Paths.SummaryCSV)
	p.MetricsFile = p.resolve(c.Paths.MetricsFile)
	p.LogFile = p.resolve(c.Logging.FilePath)

	return p, nil
}

// resolve joins a relative name to the base directory; empty stays empty
func (p *Paths) resolve(name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.BaseDir, name)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs detailed path resolution information for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("Path resolution summary",
		slog.String("base_dir", p.BaseDir),
		slog.Group("files",
			slog.String("input", p.InputFile),
			slog.Bool("input_exists", FileExists(p.InputFile)),
			slog.String("output", p.OutputFile),
			slog.String("summary_csv", p.SummaryCSV),
			slog.String("metrics", p.MetricsFile),
			slog.String("log", p.LogFile),
		))
}
