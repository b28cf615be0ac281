// This file implements Reconstruct: pivoting flat cell records back into an
// ordered, typed table for display or export.
package sqlite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lsu-datastore/datastore/pkg/types"
)

// Reconstruct rebuilds the stored table for a file id. Cells are fetched in
// row order and pivoted into a grid; the stored column order is applied when
// present (legacy files without one keep first-appearance order); headers are
// reformatted for display; and each column is coerced to numbers when every
// non-sentinel value parses. An unknown id yields an empty table, not an
// error, matching the lenient no-data policy of the surrounding dashboard.
//
// Reconstruction is read-only and deterministic: the same unmodified file
// always produces an identical table.
func (s *Store) Reconstruct(fileID int64) (types.DataTable, error) {
	db, err := s.conn()
	if err != nil {
		return types.DataTable{}, err
	}

	rows, err := db.Query(
		"SELECT row_number, column_name, value FROM csv_data "+
			"WHERE file_id = ? ORDER BY row_number, id",
		fileID,
	)
	if err != nil {
		return types.DataTable{}, fmt.Errorf("querying cells: %w", err)
	}
	defer rows.Close()

	// Pivot the flat records. Row numbers arrive sorted; columns keep their
	// first-appearance order as the fallback when no stored order exists.
	var rowNumbers []int64
	rowIndex := make(map[int64]int)
	var columns []string
	colSeen := make(map[string]bool)
	cells := make(map[int64]map[string]string)

	for rows.Next() {
		var rowNum int64
		var column, value string
		if err := rows.Scan(&rowNum, &column, &value); err != nil {
			return types.DataTable{}, fmt.Errorf("scanning cell: %w", err)
		}
		if _, ok := rowIndex[rowNum]; !ok {
			rowIndex[rowNum] = len(rowNumbers)
			rowNumbers = append(rowNumbers, rowNum)
			cells[rowNum] = make(map[string]string)
		}
		if !colSeen[column] {
			colSeen[column] = true
			columns = append(columns, column)
		}
		cells[rowNum][column] = value
	}
	if err := rows.Err(); err != nil {
		return types.DataTable{}, fmt.Errorf("iterating cells: %w", err)
	}

	if len(rowNumbers) == 0 {
		return types.DataTable{}, nil
	}

	stored, err := s.columnOrder(fileID)
	if err != nil {
		return types.DataTable{}, err
	}
	if samePermutation(stored, colSeen) {
		columns = stored
	}

	table := types.NewDataTable(formatHeaders(columns))
	for _, rowNum := range rowNumbers {
		row := make([]types.Value, len(columns))
		for i, column := range columns {
			row[i] = types.TextValue(cells[rowNum][column])
		}
		table.Rows = append(table.Rows, row)
	}

	inferNumericColumns(&table)
	return table, nil
}

// samePermutation reports whether stored holds exactly the columns in seen,
// each once. A stored order that drifted from the cells (hand-edited
// databases) is ignored rather than trusted.
func samePermutation(stored []string, seen map[string]bool) bool {
	if len(stored) == 0 || len(stored) != len(seen) {
		return false
	}
	used := make(map[string]bool, len(stored))
	for _, name := range stored {
		if !seen[name] || used[name] {
			return false
		}
		used[name] = true
	}
	return true
}

// formatHeaders applies the display transform to column names: underscores
// become spaces and each word is title-cased. Presentation only; the stored
// column names are untouched.
func formatHeaders(columns []string) []string {
	out := make([]string, len(columns))
	for i, name := range columns {
		out[i] = formatHeader(name)
	}
	return out
}

func formatHeader(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// inferNumericColumns coerces each column to numbers when every non-sentinel
// value parses as one. A single stray text value keeps the whole column
// textual. Sentinel cells never participate in the parse and stay text even
// inside a numeric column.
func inferNumericColumns(t *types.DataTable) {
	for col := 0; col < t.NumColumns(); col++ {
		numeric := true
		parsed := make([]float64, t.NumRows())
		sentinel := make([]bool, t.NumRows())
		for i, row := range t.Rows {
			v := row[col]
			if v.IsSentinel() {
				sentinel[i] = true
				continue
			}
			f, err := strconv.ParseFloat(v.Text, 64)
			if err != nil {
				numeric = false
				break
			}
			parsed[i] = f
		}
		if !numeric {
			continue
		}
		for i := range t.Rows {
			if !sentinel[i] {
				t.Rows[i][col] = types.NumberValue(parsed[i])
			}
		}
	}
}
