package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quistonpe/qiston/internal/service"
	"github.com/quistonpe/qiston/internal/utils"
)

func newPayCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var paymentDate string

	cmd := &cobra.Command{
		Use:   "pay <invoice-id>",
		Short: "Record a payment against an invoice",
		Long:  "Mark an invoice as paid. Without --date the payment is recorded as of today.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			inv, err := invoiceService.RecordPayment(ctx, args[0], paymentDate)
			if err != nil {
				return err
			}

			fmt.Printf("Recorded payment for %s on %s (%s)\n",
				inv.ID, utils.FromPtr(inv.PaymentDate), inv.CustomerName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&paymentDate, "date", "d", "", "Payment date (YYYY-MM-DD, defaults to today)")

	return cmd
}
