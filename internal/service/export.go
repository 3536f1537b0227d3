package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/quistonpe/qiston/internal/invoice"
	"github.com/quistonpe/qiston/internal/models"
	"github.com/quistonpe/qiston/internal/utils"
)

// ExportCSV writes the filtered invoice list as CSV.
func (s *InvoiceService) ExportCSV(ctx context.Context, w io.Writer, filter ListFilter) (int, error) {
	invoices, err := s.ListInvoices(ctx, filter)
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{
		"ID", "Customer", "Amount", "Invoice Date", "Payment Terms", "Due Date", "Payment Date", "Status", "Timing",
	}); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, inv := range invoices {
		record := []string{
			inv.ID,
			inv.CustomerName,
			inv.Amount.StringFixed(2),
			inv.InvoiceDate,
			fmt.Sprintf("%d", inv.PaymentTerms),
			inv.DueDate,
			utils.FromPtr(inv.PaymentDate),
			string(inv.Status),
			invoice.TimingLabel(inv.Status, inv.DueDate, inv.PaymentDate),
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return len(invoices), nil
}

// FormatAmount renders a currency-agnostic magnitude for display.
func (s *InvoiceService) FormatAmount(inv *models.Invoice) string {
	return inv.Amount.StringFixed(2)
}
