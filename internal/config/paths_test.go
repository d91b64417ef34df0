package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaths(t *testing.T) {
	base := t.TempDir()
	absOut := filepath.Join(t.TempDir(), "elsewhere.txt")

	tests := []struct {
		name  string
		setup func(*Config)
		check func(*testing.T, *Paths)
	}{
		{
			name:  "defaults resolve against base dir",
			setup: func(c *Config) { c.Paths.BaseDir = base },
			check: func(t *testing.T, p *Paths) {
				assert.Equal(t, base, p.BaseDir)
				assert.Equal(t, filepath.Join(base, "penguins.csv"), p.InputFile)
				assert.Equal(t, filepath.Join(base, "penguin_results.txt"), p.OutputFile)
				assert.Equal(t, filepath.Join(base, "logs", "penguin-report.log"), p.LogFile)
				assert.Empty(t, p.SummaryCSV)
				assert.Empty(t, p.MetricsFile)
			},
		},
		{
			name: "absolute names are kept",
			setup: func(c *Config) {
				c.Paths.BaseDir = base
				c.Paths.OutputFile = absOut
				c.Paths.SummaryCSV = "out/summary.csv"
			},
			check: func(t *testing.T, p *Paths) {
				assert.Equal(t, absOut, p.OutputFile)
				assert.Equal(t, filepath.Join(base, "out", "summary.csv"), p.SummaryCSV)
			},
		},
		{
			name:  "empty base dir uses executable dir",
			setup: func(c *Config) {},
			check: func(t *testing.T, p *Paths) {
				exeDir, err := ExecutableDir()
				require.NoError(t, err)
				assert.Equal(t, exeDir, p.BaseDir)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.setup(cfg)

			paths, err := cfg.ResolvePaths()
			require.NoError(t, err)
			tt.check(t, paths)
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "penguins.csv")

	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("species\n"), 0644))
	assert.True(t, FileExists(path))
}
