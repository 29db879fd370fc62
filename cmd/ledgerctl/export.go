package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"billbook/internal/ledger"
	"billbook/internal/service"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export bills, expenses or the whole ledger",
}

var exportBillsCmd = &cobra.Command{
	Use:   "bills",
	Short: "Write the filtered bills as CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		q, bom := queryFlags(cmd)
		att, err := ledgerApp.Exports.BillsCSV(cmd.Context(), q, bom)
		if err != nil {
			return err
		}
		return writeAttachment(cmd, att)
	},
}

var exportExpensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Write the filtered expenses as CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		q, bom := queryFlags(cmd)
		att, err := ledgerApp.Exports.ExpensesCSV(cmd.Context(), q, bom)
		if err != nil {
			return err
		}
		return writeAttachment(cmd, att)
	},
}

var exportXLSXCmd = &cobra.Command{
	Use:   "xlsx",
	Short: "Write bills, expenses and invoice groups as an Excel workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		att, err := ledgerApp.Exports.Workbook(cmd.Context())
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = att.Filename
		}
		if err := writeOutput(cmd.OutOrStdout(), out, att.Data); err != nil {
			return err
		}
		if out != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
		}
		return nil
	},
}

// queryFlags reads the shared filter flags.
func queryFlags(cmd *cobra.Command) (ledger.Query, bool) {
	var q ledger.Query
	q.Text, _ = cmd.Flags().GetString("q")
	q.From, _ = cmd.Flags().GetString("from")
	q.To, _ = cmd.Flags().GetString("to")
	bom, _ := cmd.Flags().GetBool("bom")
	return q, bom
}

// writeAttachment writes a CSV to --out, or to stdout when --out is empty.
func writeAttachment(cmd *cobra.Command, att *service.Attachment) error {
	out, _ := cmd.Flags().GetString("out")
	return writeOutput(cmd.OutOrStdout(), out, att.Data)
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportBillsCmd, exportExpensesCmd, exportXLSXCmd)

	for _, c := range []*cobra.Command{exportBillsCmd, exportExpensesCmd} {
		c.Flags().StringP("out", "o", "", "Output file path (default: stdout)")
		c.Flags().String("q", "", "Case-insensitive text filter")
		c.Flags().String("from", "", "Earliest date, YYYY-MM-DD")
		c.Flags().String("to", "", "Latest date, YYYY-MM-DD")
		c.Flags().Bool("bom", false, "Prefix a UTF-8 byte order mark for Excel")
	}
	exportXLSXCmd.Flags().StringP("out", "o", "", "Output file path (default: ledger_<date>.xlsx, - for stdout)")
}
