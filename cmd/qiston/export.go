package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quistonpe/qiston/internal/service"
)

func newExportCmd(invoiceService *service.InvoiceService) *cobra.Command {
	var status, customer, output string
	var pdfID string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export invoices to CSV or PDF",
		Long:  "Export the invoice list as CSV (default stdout), or render a single invoice as a PDF with --pdf.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if pdfID != "" {
				fileName, err := invoiceService.GenerateInvoicePDF(ctx, pdfID, output)
				if err != nil {
					return err
				}
				fmt.Printf("Generated invoice PDF: %s\n", fileName)
				return nil
			}

			file := os.Stdout
			if output != "" && output != "-" {
				var err error
				file, err = os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer file.Close()
			}

			count, err := invoiceService.ExportCSV(ctx, file, service.ListFilter{
				Status:   status,
				Customer: customer,
			})
			if err != nil {
				return err
			}

			if file != os.Stdout {
				fmt.Printf("Exported %d invoices to %s\n", count, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status: paid, pending or overdue")
	cmd.Flags().StringVarP(&customer, "customer", "c", "", "Filter by customer name substring")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout for CSV)")
	cmd.Flags().StringVarP(&pdfID, "pdf", "p", "", "Render the invoice with this ID as a PDF instead of CSV")

	return cmd
}
