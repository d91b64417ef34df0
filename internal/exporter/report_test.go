package exporter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "penguincli/internal/errors"
	"penguincli/pkg/contracts/domain"
)

func sampleSummary() *domain.BillDepthSummary {
	s := domain.NewBillDepthSummary()
	s.Set("Dream", domain.SexMeans{Male: 18.25, Female: 17.0})
	s.Set("Biscoe", domain.SexMeans{Male: 15.0, Female: 0})
	return s
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, "Adelie", 0.5, sampleSummary()))

	want := "Penguin Calculations:\n" +
		" \n" +
		"Mass / (Bill x Flipper) Ratio for Adelie:\n" +
		"0.5\n" +
		" \n" +
		"Average Bill Depth (mm) by Island and Sex:\n" +
		"Dream:\n" +
		"  Male:   18.25 mm\n" +
		"  Female: 17.00 mm\n" +
		"\n" +
		"Biscoe:\n" +
		"  Male:   15.00 mm\n" +
		"  Female: 0.00 mm\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderReport_EmptySummary(t *testing.T) {
	for name, summary := range map[string]*domain.BillDepthSummary{
		"empty": domain.NewBillDepthSummary(),
		"nil":   nil,
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderReport(&buf, "Gentoo", 0, summary))

			out := buf.String()
			assert.True(t, strings.HasSuffix(out, "Average Bill Depth (mm) by Island and Sex:\n"))
			assert.Contains(t, out, "Ratio for Gentoo:\n0.0\n")
			assert.NotContains(t, out, "Male:")
			assert.NotContains(t, out, "Female:")
		})
	}
}

func TestWriteReport_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "penguin_results.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale content\n", 100)), 0644))

	require.NoError(t, WriteReport(path, "Adelie", 0.5, sampleSummary()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, WriteReport(path, "Adelie", 0.5, sampleSummary()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotContains(t, string(second), "stale content")

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, "Adelie", 0.5, sampleSummary()))
	assert.Equal(t, buf.Bytes(), second)
}

func TestWriteReport_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "penguin_results.txt")

	err := WriteReport(path, "Adelie", 0.5, sampleSummary())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
