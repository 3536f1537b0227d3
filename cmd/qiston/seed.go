package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quistonpe/qiston/internal/service"
)

func newSeedCmd(invoiceService *service.InvoiceService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo invoices",
		Long:  "Insert a small demo dataset with paid, pending, and overdue invoices positioned relative to today.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			count, err := invoiceService.Seed(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Seeded %d invoices.\n", count)
			return nil
		},
	}

	return cmd
}
