package exporter

import (
	"bufio"
	"fmt"
	"io"
	"os"

	apperrors "penguincli/internal/errors"
	"penguincli/pkg/contracts/domain"
)

// RenderReport writes the penguin calculations report to w
func RenderReport(w io.Writer, species string, ratio float64, summary *domain.BillDepthSummary) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Penguin Calculations:\n")
	fmt.Fprintf(bw, " \n")
	fmt.Fprintf(bw, "Mass / (Bill x Flipper) Ratio for %s:\n", species)
	fmt.Fprintf(bw, "%s\n", formatRatio(ratio))
	fmt.Fprintf(bw, " \n")
	fmt.Fprintf(bw, "Average Bill Depth (mm) by Island and Sex:\n")

	for _, im := range summary.Islands() {
		fmt.Fprintf(bw, "%s:\n", im.Island)
		fmt.Fprintf(bw, "  Male:   %s mm\n", formatFloat(im.Means.Male))
		fmt.Fprintf(bw, "  Female: %s mm\n\n", formatFloat(im.Means.Female))
	}

	return bw.Flush()
}

// WriteReport writes the report to path, replacing any previous content
func WriteReport(path, species string, ratio float64, summary *domain.BillDepthSummary) error {
	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create report %s", path), err).
			WithContext("path", path)
	}

	if err := RenderReport(file, species, ratio, summary); err != nil {
		file.Close()
		return apperrors.NewStorageError(fmt.Sprintf("failed to write report %s", path), err).
			WithContext("path", path)
	}

	if err := file.Close(); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to close report %s", path), err).
			WithContext("path", path)
	}
	return nil
}
