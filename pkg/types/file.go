package types

import "time"

// FileInfo is the metadata row for one stored dataset.
type FileInfo struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"` // not unique; duplicates permitted
	Size       int64     `json:"file_size"`
	Format     string    `json:"file_format"`
	UserID     int64     `json:"user_id"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// SearchMatch identifies one cell whose value contains a search query.
type SearchMatch struct {
	FileID int64  `json:"file_id"`
	Row    int64  `json:"row_number"`
	Column string `json:"column_name"`
	Value  string `json:"value"`
}
