package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsu-datastore/datastore/pkg/types"
)

func TestParse(t *testing.T) {
	t.Run("parses header and rows", func(t *testing.T) {
		table, err := Parse([]byte("name,score\nAlice,10\nBob,20\n"))
		require.NoError(t, err)

		assert.Equal(t, []string{"name", "score"}, table.Columns)
		require.Equal(t, 2, table.NumRows())
		assert.Equal(t, types.TextValue("Alice"), table.Rows[0][0])
		assert.Equal(t, types.TextValue("20"), table.Rows[1][1])
	})

	t.Run("header-only payload has zero rows", func(t *testing.T) {
		table, err := Parse([]byte("name,score\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "score"}, table.Columns)
		assert.True(t, table.IsEmpty())
	})

	t.Run("quoted fields keep commas and newlines", func(t *testing.T) {
		table, err := Parse([]byte("title,note\n\"a, b\",\"line1\nline2\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "a, b", table.Rows[0][0].Text)
		assert.Equal(t, "line1\nline2", table.Rows[0][1].Text)
	})

	t.Run("empty payload is malformed", func(t *testing.T) {
		_, err := Parse(nil)
		assert.ErrorIs(t, err, types.ErrMalformedCSV)
	})

	t.Run("ragged records are malformed", func(t *testing.T) {
		_, err := Parse([]byte("a,b\n1,2,3\n"))
		assert.ErrorIs(t, err, types.ErrMalformedCSV)
	})
}

func TestReplaceSentinel(t *testing.T) {
	table, err := Parse([]byte("a,b\nemptyvalue,kept\nx,emptyvalue\n"))
	require.NoError(t, err)

	ReplaceSentinel(&table)

	assert.Equal(t, types.Sentinel, table.Rows[0][0].Text)
	assert.Equal(t, "kept", table.Rows[0][1].Text)
	assert.Equal(t, types.Sentinel, table.Rows[1][1].Text)
}

func TestMarshalCSVRoundTrip(t *testing.T) {
	in := []byte("name,score\nAlice,10\nBob,20\n")
	table, err := Parse(in)
	require.NoError(t, err)

	out, err := MarshalCSV(table)
	require.NoError(t, err)
	assert.Equal(t, string(in), string(out))
}

func TestMarshalCSVNumericCells(t *testing.T) {
	table := types.NewDataTable([]string{"score"})
	require.NoError(t, table.AppendRow([]types.Value{types.NumberValue(10)}))
	require.NoError(t, table.AppendRow([]types.Value{types.NumberValue(2.5)}))

	out, err := MarshalCSV(table)
	require.NoError(t, err)
	assert.Equal(t, "score\n10\n2.5\n", string(out))
}
