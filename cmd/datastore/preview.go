package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lsu-datastore/datastore/internal/tabular"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file-id>",
	Short: "Reconstruct a dataset and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileID, err := parseFileID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		table, err := store.Reconstruct(fileID)
		if err != nil {
			return err
		}
		if table.IsEmpty() {
			fmt.Println("no data available")
			return nil
		}

		format := tabular.FormatCSV
		if flagJSON {
			format = tabular.FormatJSON
		}
		data, err := tabular.Marshal(table, format)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

// parseFileID parses a positional file-id argument.
func parseFileID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("file id must be an integer, got %q", arg)
	}
	return id, nil
}
