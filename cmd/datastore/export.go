package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lsu-datastore/datastore/internal/tabular"
)

var (
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <file-id>",
	Short: "Export a dataset as CSV or JSON",
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

		data, err := store.Export(fileID, flagExportFormat)
		if err != nil {
			return err
		}

		if flagExportOut == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := tabular.WriteFileAtomic(flagExportOut, data); err != nil {
			return err
		}
		fmt.Printf("exported file %d to %s\n", fileID, flagExportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", tabular.FormatCSV, "export format: csv or json")
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "output path (default: stdout)")
}
