package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lsu-datastore/datastore/internal/server"
	"github.com/lsu-datastore/datastore/internal/sqlite"
	"github.com/lsu-datastore/datastore/pkg/types"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer logger.Sync()
		log := logger.Sugar()

		cfg := types.Config{DataDir: dataDir, DatabaseName: configDatabaseName}
		store, err := sqlite.Open(cfg, log)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		addr := flagServeAddr
		if addr == "" {
			addr = configListenAddr
		}

		srv := server.New(store, log)
		log.Infow("serving", "addr", addr, "data_dir", dataDir)
		return http.ListenAndServe(addr, srv.Handler())
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "listen address (default: config listen_addr or :8080)")
}
