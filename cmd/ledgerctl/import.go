package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import records from a spreadsheet",
}

var importXLSXCmd = &cobra.Command{
	Use:   "xlsx <file>",
	Short: "Create bills from the Bills sheet of an .xlsx workbook",
	Long: `Reads the Bills sheet of a workbook laid out like "ledgerctl export xlsx".
Columns are matched by header text. Invalid rows are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening workbook: %w", err)
		}
		defer f.Close()

		res, err := ledgerApp.Imports.ImportBills(cmd.Context(), f)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "imported %d bills\n", res.Imported)
		for _, e := range res.Failed {
			fmt.Fprintf(out, "row %d: %s (%s)\n", e.Row, e.Message, e.Field)
		}
		if len(res.Failed) > 0 {
			return fmt.Errorf("%d rows skipped", len(res.Failed))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.AddCommand(importXLSXCmd)
}
