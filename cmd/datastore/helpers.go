// Shared helpers for datastore CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lsu-datastore/datastore/internal/sqlite"
	"github.com/lsu-datastore/datastore/pkg/types"
)

// openStore resolves the data directory and opens the store. The caller must
// defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		DataDir:      dataDir,
		DatabaseName: configDatabaseName,
	}

	log, err := buildLogger()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	store, err := sqlite.Open(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// buildLogger returns a development logger on --verbose, a nop logger
// otherwise, so normal CLI output stays clean.
func buildLogger() (*zap.SugaredLogger, error) {
	if !flagVerbose {
		return zap.NewNop().Sugar(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
