package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quistonpe/qiston/internal/service"
)

func newSummaryCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var customer string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show cash-flow summary",
		Long:  "Summarize invoices into outstanding, overdue, and paid-this-month totals plus the average payment delay.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			summary, err := invoiceService.Summary(ctx, service.ListFilter{Customer: customer})
			if err != nil {
				return err
			}

			fmt.Printf("Outstanding:     %s\n", summary.Outstanding.StringFixed(2))
			fmt.Printf("Overdue:         %s\n", summary.Overdue.StringFixed(2))
			fmt.Printf("Paid this month: %s\n", summary.PaidThisMonth.StringFixed(2))
			fmt.Printf("Avg delay:       %.1f days\n", summary.AvgDelayDays)
			return nil
		},
	}

	cmd.Flags().StringVarP(&customer, "customer", "c", "", "Limit the summary to a customer name substring")

	return cmd
}
