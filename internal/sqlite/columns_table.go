// This file implements the csv_columns accessors. The cell table carries no
// ordering information, so the declared left-to-right column order is stored
// separately at ingest time and replayed during reconstruction.
package sqlite

import (
	"database/sql"
	"fmt"
)

// insertColumnOrder records the column positions for a file, contiguous from
// zero.
func insertColumnOrder(tx *sql.Tx, fileID int64, columns []string) error {
	for idx, name := range columns {
		_, err := tx.Exec(
			"INSERT INTO csv_columns (file_id, column_index, column_name) VALUES (?, ?, ?)",
			fileID, idx, name,
		)
		if err != nil {
			return fmt.Errorf("inserting column order %q: %w", name, err)
		}
	}
	return nil
}

// replaceColumnOrder drops and reinserts the column order for a file. Called
// from Update so edits that add, rename, or reorder columns do not leave the
// stored order stale.
func replaceColumnOrder(tx *sql.Tx, fileID int64, columns []string) error {
	if _, err := tx.Exec("DELETE FROM csv_columns WHERE file_id = ?", fileID); err != nil {
		return fmt.Errorf("clearing column order: %w", err)
	}
	return insertColumnOrder(tx, fileID, columns)
}

// columnOrder returns the stored column order for a file, or an empty slice
// for legacy files ingested before order tracking existed.
func (s *Store) columnOrder(fileID int64) ([]string, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT column_name FROM csv_columns WHERE file_id = ? ORDER BY column_index",
		fileID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying column order: %w", err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning column order: %w", err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column order: %w", err)
	}
	return columns, nil
}
