package sqlite

import (
	"github.com/lsu-datastore/datastore/internal/tabular"
	"github.com/lsu-datastore/datastore/pkg/types"
)

// Export reconstructs a dataset and serializes it in the named format ("csv"
// or "json"). An unknown file id exports an empty table.
func (s *Store) Export(fileID int64, format string) ([]byte, error) {
	table, err := s.Reconstruct(fileID)
	if err != nil {
		return nil, err
	}
	return tabular.Marshal(table, format)
}

// Clean reconstructs a dataset, drops duplicate rows, forward-fills sentinel
// cells, and stores the result back, replacing the previous cell set.
func (s *Store) Clean(fileID int64) (types.DataTable, error) {
	table, err := s.Reconstruct(fileID)
	if err != nil {
		return types.DataTable{}, err
	}
	cleaned, err := tabular.Clean(table)
	if err != nil {
		return types.DataTable{}, err
	}
	if err := s.Update(fileID, cleaned); err != nil {
		return types.DataTable{}, err
	}
	return cleaned, nil
}
