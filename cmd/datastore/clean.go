package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file-id>",
	Short: "Drop duplicate rows and forward-fill N/A cells in a dataset",
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

		table, err := store.Clean(fileID)
		if err != nil {
			return err
		}
		fmt.Printf("cleaned file %d: %d rows remain\n", fileID, table.NumRows())
		return nil
	},
}
