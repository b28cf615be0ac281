package types

// DataTable is the in-memory form of a stored dataset: an ordered list of
// column names plus a row-major grid of values. The zero value is an empty
// table with no columns.
type DataTable struct {
	Columns []string
	Rows    [][]Value
}

// NewDataTable returns an empty table with the given column order.
func NewDataTable(columns []string) DataTable {
	return DataTable{Columns: columns}
}

// NumRows returns the number of rows.
func (t DataTable) NumRows() int { return len(t.Rows) }

// NumColumns returns the number of columns.
func (t DataTable) NumColumns() int { return len(t.Columns) }

// IsEmpty reports whether the table has no rows.
func (t DataTable) IsEmpty() bool { return len(t.Rows) == 0 }

// ColumnIndex returns the position of the named column, or -1.
func (t DataTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// AppendRow adds a row to the table. Returns ErrRaggedTable if the row length
// does not match the column count.
func (t *DataTable) AppendRow(row []Value) error {
	if len(row) != len(t.Columns) {
		return ErrRaggedTable
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// Validate checks that every row matches the column count.
func (t DataTable) Validate() error {
	for _, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return ErrRaggedTable
		}
	}
	return nil
}

// Equal reports whether two tables have identical column order and cell
// values.
func (t DataTable) Equal(o DataTable) bool {
	if len(t.Columns) != len(o.Columns) || len(t.Rows) != len(o.Rows) {
		return false
	}
	for i, c := range t.Columns {
		if o.Columns[i] != c {
			return false
		}
	}
	for i, row := range t.Rows {
		if len(row) != len(o.Rows[i]) {
			return false
		}
		for j, v := range row {
			if !v.Equal(o.Rows[i][j]) {
				return false
			}
		}
	}
	return true
}
