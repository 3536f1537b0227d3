package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/quistonpe/qiston/internal/service"
)

func newUpdateCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var customer string
	var amount float64
	var invoiceDate string
	var terms int
	var dueDate string

	cmd := &cobra.Command{
		Use:   "update <invoice-id>",
		Short: "Update invoice fields",
		Long:  "Update fields on an existing invoice. The due date and status are re-derived after the update unless an explicit due date is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var updates service.UpdateParams
			if cmd.Flags().Changed("customer") {
				updates.CustomerName = &customer
			}
			if cmd.Flags().Changed("amount") {
				value := decimal.NewFromFloat(amount)
				updates.Amount = &value
			}
			if cmd.Flags().Changed("date") {
				updates.InvoiceDate = &invoiceDate
			}
			if cmd.Flags().Changed("terms") {
				updates.PaymentTerms = &terms
			}
			if cmd.Flags().Changed("due") {
				updates.DueDate = &dueDate
			}

			if updates == (service.UpdateParams{}) {
				return fmt.Errorf("nothing to update, use flags to specify fields")
			}

			inv, err := invoiceService.UpdateInvoice(ctx, args[0], updates)
			if err != nil {
				return err
			}

			fmt.Printf("Updated invoice %s (%s, %s, due %s, %s)\n",
				inv.ID, inv.CustomerName, invoiceService.FormatAmount(inv), inv.DueDate, inv.Status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&customer, "customer", "c", "", "New customer name")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0.0, "New amount")
	cmd.Flags().StringVarP(&invoiceDate, "date", "d", "", "New invoice date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&terms, "terms", "t", 0, "New payment terms in days")
	cmd.Flags().StringVarP(&dueDate, "due", "u", "", "Explicit due date override (YYYY-MM-DD)")

	return cmd
}
