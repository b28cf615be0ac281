package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lsu-datastore/datastore/internal/tabular"
)

var updateCmd = &cobra.Command{
	Use:   "update <file-id> <file.csv>",
	Short: "Replace a dataset's rows with the contents of a CSV file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileID, err := parseFileID(args[0])
		if err != nil {
			return err
		}
		content, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[1], err)
		}
		table, err := tabular.Parse(content)
		if err != nil {
			return err
		}
		tabular.ReplaceSentinel(&table)

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Update(fileID, table); err != nil {
			return err
		}
		fmt.Printf("updated file %d\n", fileID)
		return nil
	},
}
