// This file implements Ingest: decomposing a raw CSV payload into one files
// row plus its cell and column-order records.
package sqlite

import (
	"fmt"

	"github.com/lsu-datastore/datastore/internal/tabular"
	"github.com/lsu-datastore/datastore/pkg/types"
)

// Ingest parses a CSV payload and persists it as a new stored dataset,
// returning the assigned file id. The metadata row, every cell, and the
// column order are written in a single transaction; a failure anywhere rolls
// the whole ingest back, leaving no partial file behind.
//
// A header-only payload (zero data rows) is accepted and produces no cell or
// column-order records beyond the declared columns.
func (s *Store) Ingest(filename string, content []byte, size int64, format string, userID int64) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	if filename == "" {
		return 0, types.ErrInvalidFilename
	}
	if size < 0 {
		return 0, types.ErrInvalidSize
	}
	if userID <= 0 {
		return 0, types.ErrInvalidUser
	}

	table, err := tabular.Parse(content)
	if err != nil {
		return 0, err
	}
	tabular.ReplaceSentinel(&table)

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	fileID, err := insertFile(tx, filename, size, format, userID)
	if err != nil {
		return 0, err
	}
	if err := insertCells(tx, fileID, table); err != nil {
		return 0, err
	}
	if err := insertColumnOrder(tx, fileID, table.Columns); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing ingest: %w", err)
	}

	s.log.Infow("ingested file", "file_id", fileID, "filename", filename,
		"rows", table.NumRows(), "columns", table.NumColumns())
	return fileID, nil
}
