package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/lsu-datastore/datastore/pkg/types"
)

// Store is the handle every operation goes through. It owns the single SQLite
// connection pool; there is no module-level state, so tests can build an
// isolated disposable store per case.
type Store struct {
	config types.Config
	db     *sql.DB
	log    *zap.SugaredLogger
}

// Open creates the data directory if needed, opens the SQLite database, and
// ensures the schema exists. An unwritable location fails loudly here rather
// than on first use. A nil logger disables logging.
func Open(config types.Config, log *zap.SugaredLogger) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, config.Database())
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL for concurrent readers; foreign_keys so csv_data's ON DELETE
	// CASCADE actually fires (SQLite defaults it off per connection).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{config: config, db: db, log: log}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	log.Debugw("store opened", "path", dbPath)
	return s, nil
}

// Close releases the database connection. Idempotent; operations after Close
// return ErrStoreClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	return nil
}

// conn returns the live connection or ErrStoreClosed.
func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// ensureSchema creates all tables and indexes that do not exist yet. Safe to
// call on every open.
func (s *Store) ensureSchema() error {
	for _, ddl := range schemaDDL {
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}
