package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	flagIngestUser   int64
	flagIngestFormat string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file.csv>",
	Short: "Store a CSV file as a new dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		fileID, err := store.Ingest(
			filepath.Base(path), content, int64(len(content)),
			flagIngestFormat, flagIngestUser,
		)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]int64{"file_id": fileID})
		}
		fmt.Printf("ingested %s as file %d\n", filepath.Base(path), fileID)
		return nil
	},
}

func init() {
	ingestCmd.Flags().Int64Var(&flagIngestUser, "user", 1, "owning user id")
	ingestCmd.Flags().StringVar(&flagIngestFormat, "format", "csv", "format tag recorded in file metadata")
}
