// Package tabular converts between DataTable values and external
// representations: CSV payloads, JSON exports, and files on disk.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lsu-datastore/datastore/pkg/types"
)

// Parse reads a CSV payload into a DataTable. The first record is the header;
// every cell comes back as text. Returns ErrMalformedCSV (wrapped) when the
// payload has no header or the records are not rectangular.
func Parse(content []byte) (types.DataTable, error) {
	r := csv.NewReader(bytes.NewReader(content))

	header, err := r.Read()
	if err == io.EOF {
		return types.DataTable{}, fmt.Errorf("%w: missing header", types.ErrMalformedCSV)
	}
	if err != nil {
		return types.DataTable{}, fmt.Errorf("%w: %v", types.ErrMalformedCSV, err)
	}

	table := types.NewDataTable(header)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return types.DataTable{}, fmt.Errorf("%w: %v", types.ErrMalformedCSV, err)
		}
		row := make([]types.Value, len(record))
		for i, field := range record {
			row[i] = types.TextValue(field)
		}
		if err := table.AppendRow(row); err != nil {
			return types.DataTable{}, fmt.Errorf("%w: %v", types.ErrMalformedCSV, err)
		}
	}
	return table, nil
}

// ReplaceSentinel rewrites every RawSentinel cell to the N/A display sentinel
// in place. Round-trip fidelity depends on this happening before storage.
func ReplaceSentinel(t *types.DataTable) {
	for _, row := range t.Rows {
		for i, v := range row {
			if v.Kind == types.KindText && v.Text == types.RawSentinel {
				row[i] = types.TextValue(types.Sentinel)
			}
		}
	}
}

// MarshalCSV serializes a table as CSV, header first. Numeric cells use their
// storage form.
func MarshalCSV(t types.DataTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	record := make([]string, t.NumColumns())
	for _, row := range t.Rows {
		for i, v := range row {
			record[i] = v.String()
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}
