// Package export serializes filtered record lists to CSV, XLSX, or a
// Google Sheets report. Exports always operate on the filtered,
// unpaginated list, truncated to the spec's limit, in filtered order.
package export

import (
	"fmt"
	"log/slog"

	"github.com/redemly/redly/internal/common"
)

// Placeholder is the cell value emitted when a column func fails.
const Placeholder = "N/A"

// Column is one projected field: a header label and the value func.
type Column[T any] struct {
	Value func(T) string
	Label string
}

// Spec describes an export projection: the ordered columns and the maximum
// number of rows to emit. Limit 0 means no truncation.
type Spec[T any] struct {
	Columns []Column[T]
	Limit   int
}

// Validate rejects malformed specs. A bad spec is a programmer error, so
// callers should treat a Validate failure as fatal rather than skipping it.
func (s Spec[T]) Validate() error {
	if len(s.Columns) == 0 {
		return fmt.Errorf("%w: export spec has no columns", common.ErrInvalidConfig)
	}
	for i, col := range s.Columns {
		if col.Label == "" {
			return fmt.Errorf("%w: export column %d has no label", common.ErrInvalidConfig, i)
		}
		if col.Value == nil {
			return fmt.Errorf("%w: export column %q has no value func", common.ErrInvalidConfig, col.Label)
		}
	}
	if s.Limit < 0 {
		return fmt.Errorf("%w: export limit %d is negative", common.ErrInvalidConfig, s.Limit)
	}
	return nil
}

// Header returns the ordered column labels.
func (s Spec[T]) Header() []string {
	header := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		header[i] = col.Label
	}
	return header
}

// Rows projects records through the spec. The limit truncates the input as
// a prefix, preserving order. A column func that panics yields the
// placeholder cell instead of failing the export. Zero input rows is
// ErrNothingToExport: the caller should warn and produce no file.
func Rows[T any](records []T, spec Spec[T]) ([][]string, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, common.ErrNothingToExport
	}

	if spec.Limit > 0 && len(records) > spec.Limit {
		records = records[:spec.Limit]
	}

	rows := make([][]string, len(records))
	for i, record := range records {
		row := make([]string, len(spec.Columns))
		for j, col := range spec.Columns {
			row[j] = cell(col, record)
		}
		rows[i] = row
	}
	return rows, nil
}

func cell[T any](col Column[T], record T) (value string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("export column func panicked",
				"column", col.Label,
				"panic", r)
			value = Placeholder
		}
	}()
	return col.Value(record)
}
