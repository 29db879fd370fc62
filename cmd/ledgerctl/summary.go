package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"billbook/internal/money"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print all-time sales, expenses and net, plus the ledger status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		snap := ledgerApp.Summary.Snapshot(ctx)
		status := ledgerApp.Summary.Status(ctx)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Store:     %s (%s)\n", status.Driver, status.StorageKey)
		fmt.Fprintf(out, "Bills:     %d\n", status.BillCount)
		fmt.Fprintf(out, "Expenses:  %d\n", status.ExpenseCount)
		if status.Recovered {
			fmt.Fprintln(out, "Warning:   stored document was unreadable and has been reset")
		}
		fmt.Fprintf(out, "Sales:     %s\n", money.Format(snap.Sales))
		fmt.Fprintf(out, "Spent:     %s\n", money.Format(snap.Expenses))
		fmt.Fprintf(out, "Net:       %s\n", money.Format(snap.Net))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
