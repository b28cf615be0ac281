package tabular

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lsu-datastore/datastore/pkg/types"
)

// Export formats accepted by Marshal.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Marshal serializes a table in the named format. Returns ErrUnknownFormat
// for anything other than "csv" or "json".
func Marshal(t types.DataTable, format string) ([]byte, error) {
	switch format {
	case FormatCSV:
		return MarshalCSV(t)
	case FormatJSON:
		return MarshalJSON(t)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownFormat, format)
	}
}

// MarshalJSON serializes a table as an array of objects keyed by column name.
// Numeric cells become JSON numbers; everything else, the sentinel included,
// stays a string.
func MarshalJSON(t types.DataTable) ([]byte, error) {
	records := make([]map[string]any, 0, t.NumRows())
	for _, row := range t.Rows {
		rec := make(map[string]any, t.NumColumns())
		for i, col := range t.Columns {
			v := row[i]
			if v.Kind == types.KindNumber {
				rec[col] = v.Num
			} else {
				rec[col] = v.Text
			}
		}
		records = append(records, rec)
	}
	return json.MarshalIndent(records, "", "  ")
}

// WriteFileAtomic writes data to path using the temp-file, fsync, rename
// pattern so a crash never leaves a partially written export behind.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing export: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
