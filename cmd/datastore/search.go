package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search every stored cell for a substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		matches, err := store.Search(args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(matches)
		}
		if len(matches) == 0 {
			fmt.Println("no matches")
			return nil
		}
		for _, m := range matches {
			fmt.Printf("file %d row %d %s: %s\n", m.FileID, m.Row, m.Column, m.Value)
		}
		return nil
	},
}
