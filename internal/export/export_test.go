package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/redemly/redly/internal/common"
)

type vendorRow struct {
	Name   string
	Email  string
	Status string
}

func vendorSpec(limit int) Spec[vendorRow] {
	return Spec[vendorRow]{
		Limit: limit,
		Columns: []Column[vendorRow]{
			{Label: "Name", Value: func(v vendorRow) string { return v.Name }},
			{Label: "Email", Value: func(v vendorRow) string { return v.Email }},
			{Label: "Status", Value: func(v vendorRow) string { return v.Status }},
		},
	}
}

func sampleVendors(n int) []vendorRow {
	rows := make([]vendorRow, n)
	for i := range rows {
		rows[i] = vendorRow{
			Name:   fmt.Sprintf("Vendor %02d", i),
			Email:  fmt.Sprintf("vendor%02d@redemly.test", i),
			Status: "approved",
		}
	}
	return rows
}

func TestRows_LimitTruncatesAsPrefix(t *testing.T) {
	tests := []struct {
		name    string
		records int
		limit   int
		want    int
	}{
		{name: "limit above length exports everything", records: 5, limit: 100, want: 5},
		{name: "limit below length exports the prefix", records: 10, limit: 3, want: 3},
		{name: "limit equal to length", records: 4, limit: 4, want: 4},
		{name: "zero limit means no truncation", records: 6, limit: 0, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Rows(sampleVendors(tt.records), vendorSpec(tt.limit))
			require.NoError(t, err)
			require.Len(t, rows, tt.want)

			// Prefix in filtered order.
			for i, row := range rows {
				assert.Equal(t, fmt.Sprintf("Vendor %02d", i), row[0])
			}
		})
	}
}

func TestRows_NothingToExport(t *testing.T) {
	_, err := Rows(nil, vendorSpec(10))
	assert.ErrorIs(t, err, common.ErrNothingToExport)
}

func TestRows_PanickingColumnYieldsPlaceholder(t *testing.T) {
	spec := Spec[*vendorRow]{
		Limit: 10,
		Columns: []Column[*vendorRow]{
			{Label: "Name", Value: func(v *vendorRow) string { return v.Name }},
		},
	}

	rows, err := Rows([]*vendorRow{nil, {Name: "ok"}}, spec)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Placeholder, rows[0][0])
	assert.Equal(t, "ok", rows[1][0])
}

func TestSpec_ValidateRejectsMalformedSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec Spec[vendorRow]
	}{
		{name: "no columns", spec: Spec[vendorRow]{Limit: 5}},
		{name: "missing label", spec: Spec[vendorRow]{
			Columns: []Column[vendorRow]{{Value: func(vendorRow) string { return "" }}},
		}},
		{name: "missing value func", spec: Spec[vendorRow]{
			Columns: []Column[vendorRow]{{Label: "Name"}},
		}},
		{name: "negative limit", spec: Spec[vendorRow]{
			Limit:   -1,
			Columns: []Column[vendorRow]{{Label: "Name", Value: func(vendorRow) string { return "" }}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	spec := vendorSpec(0)
	rows, err := Rows(sampleVendors(2), spec)
	require.NoError(t, err)

	require.NoError(t, WriteCSV(&buf, spec.Header(), rows))

	want := strings.Join([]string{
		"Name,Email,Status",
		"Vendor 00,vendor00@redemly.test,approved",
		"Vendor 01,vendor01@redemly.test,approved",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVAndXLSXProduceIdenticalRows(t *testing.T) {
	spec := vendorSpec(0)
	records := sampleVendors(7)
	rows, err := Rows(records, spec)
	require.NoError(t, err)

	var csvBuf, xlsxBuf bytes.Buffer
	require.NoError(t, WriteCSV(&csvBuf, spec.Header(), rows))
	require.NoError(t, WriteXLSX(&xlsxBuf, "Vendors", spec.Header(), rows))

	// Read both containers back and compare cell-for-cell.
	csvRows, err := csv.NewReader(&csvBuf).ReadAll()
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(&xlsxBuf)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, workbook.Close())
	}()
	xlsxRows, err := workbook.GetRows("Vendors")
	require.NoError(t, err)

	assert.Equal(t, csvRows, xlsxRows)
}
