package tabular

import (
	"strings"

	"github.com/lsu-datastore/datastore/pkg/types"
)

// Clean returns a copy of the table with exact duplicate rows dropped (first
// occurrence kept) and sentinel cells forward-filled from the nearest earlier
// row in the same column. Sentinels in the first row have nothing to fill
// from and are left alone. Returns ErrEmptyTable when the input has no rows.
func Clean(t types.DataTable) (types.DataTable, error) {
	if t.IsEmpty() {
		return types.DataTable{}, types.ErrEmptyTable
	}

	out := types.NewDataTable(append([]string(nil), t.Columns...))
	seen := make(map[string]bool, t.NumRows())
	for _, row := range t.Rows {
		key := rowKey(row)
		if seen[key] {
			continue
		}
		seen[key] = true
		out.Rows = append(out.Rows, append([]types.Value(nil), row...))
	}

	for col := 0; col < out.NumColumns(); col++ {
		for i := 1; i < out.NumRows(); i++ {
			if out.Rows[i][col].IsSentinel() {
				out.Rows[i][col] = out.Rows[i-1][col]
			}
		}
	}
	return out, nil
}

// rowKey builds a collision-safe map key from a row's storage forms.
func rowKey(row []types.Value) string {
	var b strings.Builder
	for _, v := range row {
		s := v.String()
		b.WriteString(strings.ReplaceAll(s, "\x00", "\x00\x00"))
		b.WriteByte(0)
		b.WriteByte(1)
	}
	return b.String()
}
