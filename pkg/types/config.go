package types

import (
	"errors"
	"strings"
)

// DefaultDatabaseName is the SQLite file created inside DataDir when the
// config does not name one. The name matches the database produced by the
// original dashboard so existing data directories keep working.
const DefaultDatabaseName = "datastore.db"

// Config holds the storage location for a Store.
type Config struct {
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	DatabaseName string `json:"database_name" yaml:"database_name"`
}

// Config validation errors.
var (
	ErrDatabaseNameInvalid = errors.New("database name must not contain path separators")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if strings.ContainsAny(c.DatabaseName, `/\`) {
		return ErrDatabaseNameInvalid
	}
	return nil
}

// Database returns the configured database file name, falling back to
// DefaultDatabaseName when unset.
func (c Config) Database() string {
	if c.DatabaseName == "" {
		return DefaultDatabaseName
	}
	return c.DatabaseName
}
