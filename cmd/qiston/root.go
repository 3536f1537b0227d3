package main

import (
	"github.com/spf13/cobra"

	"github.com/quistonpe/qiston/internal/service"
)

func newRootCmd(invoiceService *service.InvoiceService) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qiston",
		Short: "CLI invoice tracker for small businesses",
		Long: `Track invoices, payment status, and cash flow from the command line.
Due dates and statuses are derived from invoice dates and payment terms, and a
summary command reports outstanding, overdue, and paid-this-month totals.`,
	}

	rootCmd.AddCommand(
		newAddCmd(invoiceService),
		newListCmd(invoiceService),
		newPayCmd(invoiceService),
		newUpdateCmd(invoiceService),
		newSummaryCmd(invoiceService),
		newExportCmd(invoiceService),
		newSeedCmd(invoiceService),
		newClearCmd(invoiceService),
	)

	return rootCmd
}
