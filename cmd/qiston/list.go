package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quistonpe/qiston/internal/invoice"
	"github.com/quistonpe/qiston/internal/service"
	"github.com/quistonpe/qiston/internal/utils"
)

func newListCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var status, customer, sortBy string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Long:  "Show invoices with derived due dates, statuses, and timing labels. Filter by status or customer and sort with --sort.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			invoices, err := invoiceService.ListInvoices(ctx, service.ListFilter{
				Status:   status,
				Customer: customer,
				SortBy:   sortBy,
				Limit:    limit,
			})
			if err != nil {
				return err
			}

			if len(invoices) == 0 {
				fmt.Println("No invoices found.")
				return nil
			}

			for _, inv := range invoices {
				label := invoice.TimingLabel(inv.Status, inv.DueDate, inv.PaymentDate)
				line := fmt.Sprintf("%s | %s | %s | issued %s | due %s | %s | %s",
					inv.ID,
					inv.CustomerName,
					invoiceService.FormatAmount(inv),
					inv.InvoiceDate,
					inv.DueDate,
					inv.Status,
					label)
				if inv.Paid() {
					line += fmt.Sprintf(" (paid %s)", utils.FromPtr(inv.PaymentDate))
				}
				fmt.Println(line)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status: paid, pending or overdue")
	cmd.Flags().StringVarP(&customer, "customer", "c", "", "Filter by customer name substring")
	cmd.Flags().StringVarP(&sortBy, "sort", "o", "date", "Sort by: date, due, amount or customer")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of invoices to show (0 for all)")

	return cmd
}
