package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the payment state of an invoice. It is always derived from the
// payment and due dates at read time; the persisted column is a convenience
// copy and never the source of truth.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
	StatusOverdue Status = "overdue"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusOverdue:
		return true
	}
	return false
}

type Invoice struct {
	ID           string          `json:"id" db:"id"`
	CustomerName string          `json:"customer_name" db:"customer_name"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	InvoiceDate  string          `json:"invoice_date" db:"invoice_date"`
	PaymentTerms int             `json:"payment_terms" db:"payment_terms"`
	DueDate      string          `json:"due_date" db:"due_date"`
	PaymentDate  *string         `json:"payment_date,omitempty" db:"payment_date"`
	Status       Status          `json:"status" db:"status"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// Paid reports whether a payment has been recorded. Any non-empty payment
// date counts, regardless of the due date.
func (i *Invoice) Paid() bool {
	return i.PaymentDate != nil && *i.PaymentDate != ""
}

// NewInvoiceID returns a time-ordered invoice identifier.
func NewInvoiceID() string {
	return "INV-" + uuid.Must(uuid.NewV7()).String()
}
