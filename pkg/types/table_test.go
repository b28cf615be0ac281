package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTableAppendRow(t *testing.T) {
	table := NewDataTable([]string{"name", "score"})

	err := table.AppendRow([]Value{TextValue("Alice"), TextValue("10")})
	require.NoError(t, err)
	assert.Equal(t, 1, table.NumRows())

	err = table.AppendRow([]Value{TextValue("too short")})
	assert.ErrorIs(t, err, ErrRaggedTable)
	assert.Equal(t, 1, table.NumRows(), "failed append must not add a row")
}

func TestDataTableValidate(t *testing.T) {
	table := NewDataTable([]string{"a", "b"})
	table.Rows = [][]Value{
		{TextValue("1"), TextValue("2")},
		{TextValue("3")},
	}
	assert.ErrorIs(t, table.Validate(), ErrRaggedTable)
}

func TestDataTableColumnIndex(t *testing.T) {
	table := NewDataTable([]string{"b", "a"})
	assert.Equal(t, 0, table.ColumnIndex("b"))
	assert.Equal(t, 1, table.ColumnIndex("a"))
	assert.Equal(t, -1, table.ColumnIndex("missing"))
}

func TestDataTableEqual(t *testing.T) {
	build := func() DataTable {
		table := NewDataTable([]string{"name", "score"})
		table.Rows = [][]Value{
			{TextValue("Alice"), NumberValue(10)},
			{TextValue("Bob"), NumberValue(20)},
		}
		return table
	}

	a := build()
	b := build()
	assert.True(t, a.Equal(b))

	b.Rows[1][1] = NumberValue(21)
	assert.False(t, a.Equal(b))

	c := build()
	c.Columns = []string{"score", "name"}
	assert.False(t, a.Equal(c), "column order matters")
}

func TestDataTableZeroValue(t *testing.T) {
	var table DataTable
	assert.True(t, table.IsEmpty())
	assert.Equal(t, 0, table.NumColumns())
	assert.NoError(t, table.Validate())
}
