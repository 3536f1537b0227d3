package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/quistonpe/qiston/internal/dates"
	"github.com/quistonpe/qiston/internal/invoice"
	"github.com/quistonpe/qiston/internal/service"
	"github.com/quistonpe/qiston/internal/utils"
)

func newAddCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var customer string
	var amount float64
	var invoiceDate string
	var terms int
	var paymentDate string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new invoice",
		Long:  "Add an invoice with a customer, amount, invoice date and payment terms. The due date and status are derived automatically.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if amount <= 0 {
				return fmt.Errorf("amount must be greater than 0")
			}
			if invoiceDate == "" {
				invoiceDate = dates.Today().String()
			}

			inv, err := invoiceService.CreateInvoice(ctx, invoice.CreateParams{
				CustomerName: customer,
				Amount:       decimal.NewFromFloat(amount),
				InvoiceDate:  invoiceDate,
				PaymentTerms: terms,
				PaymentDate:  utils.ToPtrNil(paymentDate),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added invoice %s for %s (%s, due %s, %s)\n",
				inv.ID, inv.CustomerName, invoiceService.FormatAmount(inv), inv.DueDate, inv.Status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&customer, "customer", "c", "", "Customer name (required)")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0.0, "Invoice amount (required)")
	cmd.Flags().StringVarP(&invoiceDate, "date", "d", "", "Invoice date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().IntVarP(&terms, "terms", "t", 30, "Payment terms in days")
	cmd.Flags().StringVarP(&paymentDate, "paid", "p", "", "Payment date if already paid (YYYY-MM-DD)")

	cmd.MarkFlagRequired("customer")
	cmd.MarkFlagRequired("amount")

	return cmd
}
