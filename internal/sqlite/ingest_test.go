package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsu-datastore/datastore/pkg/types"
)

func TestIngest(t *testing.T) {
	t.Run("assigns increasing file ids", func(t *testing.T) {
		s := newTestStore(t)

		first, err := s.Ingest("one.csv", []byte("a\n1\n"), 4, "csv", 1)
		require.NoError(t, err)
		second, err := s.Ingest("two.csv", []byte("a\n2\n"), 4, "csv", 1)
		require.NoError(t, err)
		assert.Greater(t, second, first)
	})

	t.Run("records metadata", func(t *testing.T) {
		s := newTestStore(t)

		fileID, err := s.Ingest("grades.csv", []byte("name\nAlice\n"), 11, "csv", 7)
		require.NoError(t, err)

		files, err := s.ListFiles()
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, fileID, files[0].ID)
		assert.Equal(t, "grades.csv", files[0].Filename)
		assert.Equal(t, int64(11), files[0].Size)
		assert.Equal(t, "csv", files[0].Format)
		assert.Equal(t, int64(7), files[0].UserID)
		assert.False(t, files[0].UploadedAt.IsZero())
	})

	t.Run("rewrites the raw sentinel", func(t *testing.T) {
		s := newTestStore(t)

		fileID, err := s.Ingest("g.csv", []byte("a,b\nemptyvalue,2\n"), 10, "csv", 1)
		require.NoError(t, err)

		table, err := s.Reconstruct(fileID)
		require.NoError(t, err)
		assert.Equal(t, types.Sentinel, table.Rows[0][0].Text)
	})

	t.Run("accepts a header-only payload", func(t *testing.T) {
		s := newTestStore(t)

		fileID, err := s.Ingest("empty.csv", []byte("a,b\n"), 4, "csv", 1)
		require.NoError(t, err)

		table, err := s.Reconstruct(fileID)
		require.NoError(t, err)
		assert.True(t, table.IsEmpty())
	})

	t.Run("rejects bad arguments", func(t *testing.T) {
		s := newTestStore(t)
		payload := []byte("a\n1\n")

		_, err := s.Ingest("", payload, 4, "csv", 1)
		assert.ErrorIs(t, err, types.ErrInvalidFilename)

		_, err = s.Ingest("a.csv", payload, -1, "csv", 1)
		assert.ErrorIs(t, err, types.ErrInvalidSize)

		_, err = s.Ingest("a.csv", payload, 4, "csv", 0)
		assert.ErrorIs(t, err, types.ErrInvalidUser)

		_, err = s.Ingest("a.csv", nil, 0, "csv", 1)
		assert.ErrorIs(t, err, types.ErrMalformedCSV)
	})

	t.Run("malformed payload leaves no partial file", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.Ingest("bad.csv", []byte("a,b\n1,2,3\n"), 10, "csv", 1)
		require.ErrorIs(t, err, types.ErrMalformedCSV)

		files, err := s.ListFiles()
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestListFilesNewestFirst(t *testing.T) {
	s := newTestStore(t)

	// Same-second uploads fall back to the id tiebreak.
	first, err := s.Ingest("first.csv", []byte("a\n1\n"), 4, "csv", 1)
	require.NoError(t, err)
	second, err := s.Ingest("second.csv", []byte("a\n2\n"), 4, "csv", 1)
	require.NoError(t, err)

	files, err := s.ListFiles()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, second, files[0].ID)
	assert.Equal(t, first, files[1].ID)
}
