package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"
)

// Format selects the file container for an export.
type Format string

const (
	// FormatCSV writes comma-delimited text.
	FormatCSV Format = "csv"
	// FormatXLSX writes a spreadsheet workbook.
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unknown export format %q (want csv or xlsx)", s)
}

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string {
	return "." + string(f)
}

// WriteCSV writes the header and rows as CSV.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// WriteXLSX writes the header and rows as a single-sheet workbook. The
// cell content is identical to the CSV output, only the container differs.
func WriteXLSX(w io.Writer, sheet string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	if sheet == "" {
		sheet = "Export"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	writeRow := func(rowIdx int, values []string) error {
		cellRef, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return fmt.Errorf("failed to compute cell reference: %w", err)
		}
		row := make([]any, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(sheet, cellRef, &row)
	}

	if err := writeRow(1, header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, row := range rows {
		if err := writeRow(i+2, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveFile projects records through spec and writes them to path in the
// requested format. No file is created when there is nothing to export.
func SaveFile[T any](path string, format Format, sheet string, records []T, spec Spec[T]) error {
	rows, err := Rows(records, spec)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			slog.Warn("failed to close export file", "path", path, "error", closeErr)
		}
	}()

	switch format {
	case FormatXLSX:
		err = WriteXLSX(out, sheet, spec.Header(), rows)
	default:
		err = WriteCSV(out, spec.Header(), rows)
	}
	if err != nil {
		return err
	}

	slog.Info("export written",
		"path", path,
		"format", string(format),
		"rows", len(rows))
	return nil
}
