package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/quistonpe/qiston/internal/config"
	"github.com/quistonpe/qiston/internal/database"
	"github.com/quistonpe/qiston/internal/dates"
	"github.com/quistonpe/qiston/internal/invoice"
	"github.com/quistonpe/qiston/internal/models"
)

type InvoiceService struct {
	db  database.DB
	cfg *config.Config
}

func NewInvoiceService(db database.DB, cfg *config.Config) *InvoiceService {
	return &InvoiceService{db: db, cfg: cfg}
}

// CreateInvoice validates a creation payload, derives due date and status,
// and persists the new invoice.
func (s *InvoiceService) CreateInvoice(ctx context.Context, params invoice.CreateParams) (*models.Invoice, error) {
	if strings.TrimSpace(params.CustomerName) == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if !params.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be greater than 0")
	}
	issued, ok := dates.Normalize(params.InvoiceDate)
	if !ok {
		return nil, fmt.Errorf("invalid invoice date %q, expected YYYY-MM-DD", params.InvoiceDate)
	}
	if params.PaymentTerms <= 0 {
		return nil, fmt.Errorf("payment terms must be a positive number of days")
	}
	if params.PaymentDate != nil && *params.PaymentDate != "" {
		payment, ok := dates.Normalize(*params.PaymentDate)
		if !ok {
			return nil, fmt.Errorf("invalid payment date %q, expected YYYY-MM-DD", *params.PaymentDate)
		}
		if payment.Before(issued) {
			return nil, fmt.Errorf("payment date cannot be before invoice date")
		}
	}

	inv := invoice.New(params)
	created, err := s.db.CreateInvoice(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return created, nil
}

// GetInvoice fetches one invoice and re-derives its status before returning
// it. Stored status is never trusted.
func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	stored, err := s.db.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("invoice '%s' not found", id)
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	normalized := invoice.Normalize(*stored)
	return &normalized, nil
}

// ListFilter narrows and orders the invoice list. Zero values mean "all".
type ListFilter struct {
	Status   string
	Customer string
	SortBy   string
	Limit    int
}

// ListInvoices returns the stored invoices, each passed through
// invoice.Normalize so due dates and statuses reflect the current day, then
// filtered and sorted per the filter.
func (s *InvoiceService) ListInvoices(ctx context.Context, filter ListFilter) ([]*models.Invoice, error) {
	stored, err := s.db.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	invoices := lo.Map(stored, func(inv *models.Invoice, _ int) *models.Invoice {
		normalized := invoice.Normalize(*inv)
		return &normalized
	})

	if filter.Status != "" {
		status := models.Status(filter.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("invalid status '%s', expected paid, pending or overdue", filter.Status)
		}
		invoices = lo.Filter(invoices, func(inv *models.Invoice, _ int) bool {
			return inv.Status == status
		})
	}

	if filter.Customer != "" {
		needle := strings.ToLower(filter.Customer)
		invoices = lo.Filter(invoices, func(inv *models.Invoice, _ int) bool {
			return strings.Contains(strings.ToLower(inv.CustomerName), needle)
		})
	}

	if err := sortInvoices(invoices, filter.SortBy); err != nil {
		return nil, err
	}

	if filter.Limit > 0 && len(invoices) > filter.Limit {
		invoices = invoices[:filter.Limit]
	}

	return invoices, nil
}

func sortInvoices(invoices []*models.Invoice, sortBy string) error {
	switch sortBy {
	case "", "date":
		// Storage already returns newest invoice date first.
		return nil
	case "due":
		sort.SliceStable(invoices, func(i, j int) bool {
			return invoices[i].DueDate < invoices[j].DueDate
		})
	case "amount":
		sort.SliceStable(invoices, func(i, j int) bool {
			return invoices[i].Amount.GreaterThan(invoices[j].Amount)
		})
	case "customer":
		sort.SliceStable(invoices, func(i, j int) bool {
			return strings.ToLower(invoices[i].CustomerName) < strings.ToLower(invoices[j].CustomerName)
		})
	default:
		return fmt.Errorf("invalid sort '%s', expected date, due, amount or customer", sortBy)
	}
	return nil
}

// RecordPayment marks an invoice paid. An empty payment date defaults to
// today. Paid is terminal; there is no unpay.
func (s *InvoiceService) RecordPayment(ctx context.Context, id, paymentDate string) (*models.Invoice, error) {
	current, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Paid() {
		return nil, fmt.Errorf("invoice '%s' is already paid (payment date %s)", id, *current.PaymentDate)
	}

	if paymentDate == "" {
		paymentDate = dates.Today().String()
	}
	payment, ok := dates.Normalize(paymentDate)
	if !ok {
		return nil, fmt.Errorf("invalid payment date %q, expected YYYY-MM-DD", paymentDate)
	}
	if issued, ok := dates.Normalize(current.InvoiceDate); ok && payment.Before(issued) {
		return nil, fmt.Errorf("payment date cannot be before invoice date")
	}

	updated := *current
	canonical := payment.String()
	updated.PaymentDate = &canonical
	updated = invoice.Normalize(updated)

	saved, err := s.db.UpdateInvoice(ctx, updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("invoice '%s' not found", id)
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return saved, nil
}

// UpdateParams carries optional field updates; nil fields are untouched.
type UpdateParams struct {
	CustomerName *string
	Amount       *decimal.Decimal
	InvoiceDate  *string
	PaymentTerms *int
	DueDate      *string
}

// UpdateInvoice applies field updates and re-derives due date and status.
// Changing the invoice date or terms without an explicit due date clears
// the stored due date so normalization recomputes it.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id string, updates UpdateParams) (*models.Invoice, error) {
	current, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if updates.CustomerName != nil {
		if strings.TrimSpace(*updates.CustomerName) == "" {
			return nil, fmt.Errorf("customer name is required")
		}
		updated.CustomerName = *updates.CustomerName
	}
	if updates.Amount != nil {
		if !updates.Amount.IsPositive() {
			return nil, fmt.Errorf("amount must be greater than 0")
		}
		updated.Amount = *updates.Amount
	}
	if updates.InvoiceDate != nil {
		if _, ok := dates.Normalize(*updates.InvoiceDate); !ok {
			return nil, fmt.Errorf("invalid invoice date %q, expected YYYY-MM-DD", *updates.InvoiceDate)
		}
		updated.InvoiceDate = *updates.InvoiceDate
	}
	if updates.PaymentTerms != nil {
		if *updates.PaymentTerms <= 0 {
			return nil, fmt.Errorf("payment terms must be a positive number of days")
		}
		updated.PaymentTerms = *updates.PaymentTerms
	}
	switch {
	case updates.DueDate != nil:
		if _, ok := dates.Normalize(*updates.DueDate); !ok {
			return nil, fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", *updates.DueDate)
		}
		updated.DueDate = *updates.DueDate
	case updates.InvoiceDate != nil || updates.PaymentTerms != nil:
		updated.DueDate = ""
	}

	updated = invoice.Normalize(updated)

	saved, err := s.db.UpdateInvoice(ctx, updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("invoice '%s' not found", id)
		}
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return saved, nil
}

// Summary reduces the (optionally filtered) invoice list into cash-flow
// totals.
func (s *InvoiceService) Summary(ctx context.Context, filter ListFilter) (invoice.Summary, error) {
	invoices, err := s.ListInvoices(ctx, filter)
	if err != nil {
		return invoice.Summary{}, err
	}
	values := lo.Map(invoices, func(inv *models.Invoice, _ int) models.Invoice {
		return *inv
	})
	return invoice.Summarize(values), nil
}

// DeleteAllInvoices clears the store.
func (s *InvoiceService) DeleteAllInvoices(ctx context.Context) error {
	return s.db.DeleteAllInvoices(ctx)
}
