// This file implements the csv_data accessors: bulk cell insertion, the
// wholesale replace used by Update, and substring search across every stored
// value.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/lsu-datastore/datastore/pkg/types"
)

// insertCells writes one csv_data row per cell of the table, stringifying
// every value. The cell set for a file is always the full row x column cross
// product; cells are never mutated in place.
func insertCells(tx *sql.Tx, fileID int64, table types.DataTable) error {
	stmt, err := tx.Prepare(
		"INSERT INTO csv_data (file_id, row_number, column_name, value) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing cell insert: %w", err)
	}
	defer stmt.Close()

	for rowIdx, row := range table.Rows {
		for colIdx, value := range row {
			if _, err := stmt.Exec(fileID, rowIdx, table.Columns[colIdx], value.String()); err != nil {
				return fmt.Errorf("inserting cell (%d, %s): %w", rowIdx, table.Columns[colIdx], err)
			}
		}
	}
	return nil
}

// Update replaces the stored cell set for a file with the given table, all or
// nothing. The column order is regenerated in the same transaction so it
// cannot go stale relative to the cells. Rejects tables with no rows or
// mismatched row lengths before touching storage.
func (s *Store) Update(fileID int64, table types.DataTable) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if table.IsEmpty() {
		return types.ErrEmptyTable
	}
	if err := table.Validate(); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM csv_data WHERE file_id = ?", fileID); err != nil {
		return fmt.Errorf("clearing cells: %w", err)
	}
	if err := insertCells(tx, fileID, table); err != nil {
		return err
	}
	if err := replaceColumnOrder(tx, fileID, table.Columns); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing update: %w", err)
	}

	s.log.Infow("updated file", "file_id", fileID,
		"rows", table.NumRows(), "columns", table.NumColumns())
	return nil
}

// Search returns every cell whose value contains query as a case-sensitive
// substring, across all files. instr() keeps the match case-sensitive and
// literal; LIKE would fold ASCII case and give % and _ meta behavior.
// An empty query is rejected: matching every cell in the store is never what
// a caller wants.
func (s *Store) Search(query string) ([]types.SearchMatch, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return nil, types.ErrEmptyQuery
	}

	rows, err := db.Query(
		"SELECT file_id, row_number, column_name, value FROM csv_data "+
			"WHERE instr(value, ?) > 0 ORDER BY file_id, row_number, id",
		query,
	)
	if err != nil {
		return nil, fmt.Errorf("searching cells: %w", err)
	}
	defer rows.Close()

	matches := []types.SearchMatch{}
	for rows.Next() {
		var m types.SearchMatch
		if err := rows.Scan(&m.FileID, &m.Row, &m.Column, &m.Value); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating matches: %w", err)
	}
	return matches, nil
}
