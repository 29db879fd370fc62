package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Work with tax invoices",
}

var invoicePDFCmd = &cobra.Command{
	Use:   "pdf <billID>",
	Short: "Render the tax invoice PDF of a bill",
	Example: `  # Write KSP-001.pdf (named after the invoice number) in the current directory
  ledgerctl invoice pdf 6f1c2d3e-...

  # Write to an explicit path
  ledgerctl invoice pdf 6f1c2d3e-... -o /tmp/invoice.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pdf, err := ledgerApp.Invoices.RenderPDF(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = pdf.Filename
		}
		if err := writeOutput(cmd.OutOrStdout(), out, pdf.Data); err != nil {
			return err
		}
		if out != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
		}
		return nil
	},
}

var invoiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoice groups in order of first appearance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		groups, err := ledgerApp.Invoices.Groups(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, g := range groups {
			number := g.InvoiceNumber
			if number == "" {
				number = "(none)"
			}
			mark := ""
			if !g.Consistent {
				mark = "  [mixed date/customer]"
			}
			fmt.Fprintf(out, "%-16s %-10s %-24s %3d items %14.2f%s\n",
				number, g.Date, g.CustomerName, g.ItemCount, g.Total, mark)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invoiceCmd)
	invoiceCmd.AddCommand(invoicePDFCmd, invoiceListCmd)
	invoicePDFCmd.Flags().StringP("out", "o", "", "Output file path (default: <invoice number>.pdf, - for stdout)")
}
