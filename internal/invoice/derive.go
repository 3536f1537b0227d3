// Package invoice derives due dates, payment status, and timing labels from
// invoice records, and aggregates collections of invoices into cash-flow
// summaries. Every function here is total: unparseable dates degrade to
// empty-string or pending sentinels rather than returning errors.
package invoice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/quistonpe/qiston/internal/dates"
	"github.com/quistonpe/qiston/internal/models"
)

// ComputeDueDate returns invoiceDate + terms calendar days as YYYY-MM-DD.
// Returns "" if invoiceDate is unparseable or terms is negative; callers
// must treat "" as "undetermined", never as today.
func ComputeDueDate(invoiceDate string, terms int) string {
	base, ok := dates.Normalize(invoiceDate)
	if !ok || terms < 0 {
		return ""
	}
	return base.AddDays(terms).String()
}

// ComputeStatus derives the invoice status for the current day.
func ComputeStatus(paymentDate *string, dueDate string) models.Status {
	return StatusAt(paymentDate, dueDate, dates.Today())
}

// StatusAt derives the status as of a given day. Paid wins unconditionally
// whenever a payment date is present; an unparseable due date is pending,
// never overdue.
func StatusAt(paymentDate *string, dueDate string, today dates.Day) models.Status {
	if paymentDate != nil && *paymentDate != "" {
		return models.StatusPaid
	}
	due, ok := dates.Normalize(dueDate)
	if !ok {
		return models.StatusPending
	}
	if due.Before(today) {
		return models.StatusOverdue
	}
	return models.StatusPending
}

// TimingLabel renders a human-readable descriptor of how the invoice sits
// against its due date ("Paid 2 days late", "Due in 3 days", ...).
func TimingLabel(status models.Status, dueDate string, paymentDate *string) string {
	return TimingLabelAt(status, dueDate, paymentDate, dates.Today())
}

func TimingLabelAt(status models.Status, dueDate string, paymentDate *string, today dates.Day) string {
	due, dueOK := dates.Normalize(dueDate)

	if status == models.StatusPaid {
		var payment dates.Day
		paymentOK := false
		if paymentDate != nil {
			payment, paymentOK = dates.Normalize(*paymentDate)
		}
		if !dueOK || !paymentOK {
			return "Paid"
		}
		delta := dates.Diff(payment, due)
		switch {
		case delta == 0:
			return "Paid on time"
		case delta < 0:
			return fmt.Sprintf("Paid %d days early", -delta)
		default:
			return fmt.Sprintf("Paid %d days late", delta)
		}
	}

	if !dueOK {
		if status == models.StatusOverdue {
			return "Overdue"
		}
		return "Pending"
	}

	if status == models.StatusOverdue {
		daysLate := dates.Diff(today, due)
		if daysLate < 0 {
			daysLate = 0
		}
		if daysLate == 0 {
			return "Overdue today"
		}
		return fmt.Sprintf("Overdue by %d days", daysLate)
	}

	daysUntil := dates.Diff(due, today)
	switch {
	case daysUntil == 0:
		return "Due today"
	case daysUntil < 0:
		// Status and due date disagree; trust the date.
		return fmt.Sprintf("Overdue by %d days", -daysUntil)
	default:
		return fmt.Sprintf("Due in %d days", daysUntil)
	}
}

// Normalize fills the due date if absent and recomputes the status from the
// payment and due dates. Every record read from storage or supplied by a
// caller passes through here before any downstream logic trusts it. The
// input is not mutated; Normalize(Normalize(x)) == Normalize(x).
func Normalize(inv models.Invoice) models.Invoice {
	return NormalizeAt(inv, dates.Today())
}

func NormalizeAt(inv models.Invoice, today dates.Day) models.Invoice {
	if inv.DueDate == "" {
		inv.DueDate = ComputeDueDate(inv.InvoiceDate, inv.PaymentTerms)
	}
	inv.Status = StatusAt(inv.PaymentDate, inv.DueDate, today)
	return inv
}

// CreateParams is the validated payload for a new invoice. Structural
// validation (non-empty name, positive amount) belongs to the caller.
type CreateParams struct {
	ID           string
	CustomerName string
	Amount       decimal.Decimal
	InvoiceDate  string
	PaymentTerms int
	PaymentDate  *string
}

// New builds an invoice from a creation payload, assigning a time-ordered
// ID when the caller did not supply one and deriving due date and status.
func New(params CreateParams) models.Invoice {
	id := params.ID
	if id == "" {
		id = models.NewInvoiceID()
	}
	inv := models.Invoice{
		ID:           id,
		CustomerName: params.CustomerName,
		Amount:       params.Amount,
		InvoiceDate:  params.InvoiceDate,
		PaymentTerms: params.PaymentTerms,
		DueDate:      ComputeDueDate(params.InvoiceDate, params.PaymentTerms),
		PaymentDate:  params.PaymentDate,
	}
	inv.Status = ComputeStatus(inv.PaymentDate, inv.DueDate)
	return inv
}
