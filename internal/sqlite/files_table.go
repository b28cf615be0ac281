// This file implements the files metadata accessors: listing, insertion, and
// cascading deletion of stored datasets.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lsu-datastore/datastore/pkg/types"
)

// timestampLayout matches SQLite's CURRENT_TIMESTAMP default.
const timestampLayout = "2006-01-02 15:04:05"

// ListFiles returns metadata for every stored dataset, newest first. The id
// tiebreak keeps the order deterministic when uploads land within the same
// second.
func (s *Store) ListFiles() ([]types.FileInfo, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT id, filename, file_size, file_format, user_id, uploaded_at " +
			"FROM files ORDER BY uploaded_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	defer rows.Close()

	files := []types.FileInfo{}
	for rows.Next() {
		fi, err := hydrateFileInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating file info: %w", err)
		}
		files = append(files, fi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating files: %w", err)
	}
	return files, nil
}

// Delete removes a dataset and all its cell and column-order records in one
// transaction. Deleting an unknown id is a no-op.
func (s *Store) Delete(fileID int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Explicit cascade: legacy databases predate the foreign_keys pragma and
	// csv_columns never had a constraint at all.
	if _, err := tx.Exec("DELETE FROM csv_data WHERE file_id = ?", fileID); err != nil {
		return fmt.Errorf("deleting cells: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM csv_columns WHERE file_id = ?", fileID); err != nil {
		return fmt.Errorf("deleting column order: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM files WHERE id = ?", fileID); err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	s.log.Infow("deleted file", "file_id", fileID)
	return nil
}

// insertFile inserts the metadata row and returns the assigned surrogate id.
func insertFile(tx *sql.Tx, filename string, size int64, format string, userID int64) (int64, error) {
	res, err := tx.Exec(
		"INSERT INTO files (filename, file_size, file_format, user_id) VALUES (?, ?, ?, ?)",
		filename, size, format, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting file metadata: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading file id: %w", err)
	}
	return id, nil
}

// hydrateFileInfo converts one row from sql.Rows into a FileInfo.
func hydrateFileInfo(rows *sql.Rows) (types.FileInfo, error) {
	var fi types.FileInfo
	var uploadedAt string
	if err := rows.Scan(&fi.ID, &fi.Filename, &fi.Size, &fi.Format, &fi.UserID, &uploadedAt); err != nil {
		return types.FileInfo{}, err
	}
	ts, err := parseTimestamp(uploadedAt)
	if err != nil {
		return types.FileInfo{}, fmt.Errorf("parsing uploaded_at: %w", err)
	}
	fi.UploadedAt = ts
	return fi, nil
}

// parseTimestamp accepts both SQLite's CURRENT_TIMESTAMP format and RFC 3339,
// which some tooling writes into uploaded_at.
func parseTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(timestampLayout, s); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, s)
}
