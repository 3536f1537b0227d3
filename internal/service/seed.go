package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/quistonpe/qiston/internal/dates"
	"github.com/quistonpe/qiston/internal/invoice"
	"github.com/quistonpe/qiston/internal/utils"
)

// Seed inserts a small demo dataset positioned relative to today, so the
// three statuses all show up regardless of when it runs.
func (s *InvoiceService) Seed(ctx context.Context) (int, error) {
	today := dates.Today()

	seeds := []invoice.CreateParams{
		{
			CustomerName: "Sharma Textiles",
			Amount:       decimal.NewFromInt(48500),
			InvoiceDate:  today.AddDays(-45).String(),
			PaymentTerms: 30,
			PaymentDate:  utils.ToPtr(today.AddDays(-12).String()),
		},
		{
			CustomerName: "Patel Hardware",
			Amount:       decimal.NewFromInt(12750),
			InvoiceDate:  today.AddDays(-40).String(),
			PaymentTerms: 15,
		},
		{
			CustomerName: "Verma Logistics",
			Amount:       decimal.NewFromInt(89000),
			InvoiceDate:  today.AddDays(-10).String(),
			PaymentTerms: 30,
		},
		{
			CustomerName: "Mehta Printing",
			Amount:       decimal.NewFromInt(6400),
			InvoiceDate:  today.AddDays(-5).String(),
			PaymentTerms: 7,
		},
	}

	count := 0
	for _, params := range seeds {
		if _, err := s.CreateInvoice(ctx, params); err != nil {
			return count, fmt.Errorf("failed to seed invoice for %s: %w", params.CustomerName, err)
		}
		count++
	}
	return count, nil
}
