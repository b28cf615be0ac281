package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored datasets, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		files, err := store.ListFiles()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(files)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFILENAME\tSIZE\tFORMAT\tUPLOADED")
		for _, f := range files {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
				f.ID, f.Filename, f.Size, f.Format,
				f.UploadedAt.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()
	},
}
