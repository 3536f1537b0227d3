package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/quistonpe/qiston/internal/dates"
	"github.com/quistonpe/qiston/internal/models"
)

// Summary holds the cash-flow totals for a set of invoices.
type Summary struct {
	Outstanding   decimal.Decimal `json:"outstanding"`
	Overdue       decimal.Decimal `json:"overdue"`
	PaidThisMonth decimal.Decimal `json:"paid_this_month"`
	AvgDelayDays  float64         `json:"avg_delay_days"`
}

// Accumulator is a running reduction over invoices. Add is commutative and
// Merge associative, so disjoint batches can be reduced independently and
// combined; the delay average is only divided out in Summary.
type Accumulator struct {
	today         dates.Day
	outstanding   decimal.Decimal
	overdue       decimal.Decimal
	paidThisMonth decimal.Decimal
	delayTotal    int64
	delayCount    int64
}

// NewAccumulator starts an empty reduction evaluated against the given day.
// Accumulators merged together must share the same day.
func NewAccumulator(today dates.Day) *Accumulator {
	return &Accumulator{
		today:         today,
		outstanding:   decimal.Zero,
		overdue:       decimal.Zero,
		paidThisMonth: decimal.Zero,
	}
}

// Add folds one normalized invoice into the running totals.
func (a *Accumulator) Add(inv models.Invoice) {
	switch inv.Status {
	case models.StatusPending:
		a.outstanding = a.outstanding.Add(inv.Amount)
	case models.StatusOverdue:
		a.outstanding = a.outstanding.Add(inv.Amount)
		a.overdue = a.overdue.Add(inv.Amount)
	case models.StatusPaid:
		if inv.PaymentDate == nil {
			return
		}
		if dates.MonthKey(*inv.PaymentDate) == a.today.MonthKey() {
			a.paidThisMonth = a.paidThisMonth.Add(inv.Amount)
		}
		due, dueOK := dates.Normalize(inv.DueDate)
		payment, paymentOK := dates.Normalize(*inv.PaymentDate)
		if !dueOK || !paymentOK {
			return
		}
		// Early payments clamp to zero delay rather than pulling the
		// average negative.
		delay := dates.Diff(payment, due)
		if delay < 0 {
			delay = 0
		}
		a.delayTotal += int64(delay)
		a.delayCount++
	}
}

// Merge folds another accumulator's totals into this one.
func (a *Accumulator) Merge(other *Accumulator) {
	a.outstanding = a.outstanding.Add(other.outstanding)
	a.overdue = a.overdue.Add(other.overdue)
	a.paidThisMonth = a.paidThisMonth.Add(other.paidThisMonth)
	a.delayTotal += other.delayTotal
	a.delayCount += other.delayCount
}

// Summary finalizes the reduction. An empty accumulator yields all zeros.
func (a *Accumulator) Summary() Summary {
	avgDelay := 0.0
	if a.delayCount > 0 {
		avgDelay = float64(a.delayTotal) / float64(a.delayCount)
	}
	return Summary{
		Outstanding:   a.outstanding,
		Overdue:       a.overdue,
		PaidThisMonth: a.paidThisMonth,
		AvgDelayDays:  avgDelay,
	}
}

// Summarize reduces a collection of normalized invoices into summary
// statistics for the current day. Input order does not affect the result.
func Summarize(invoices []models.Invoice) Summary {
	return SummarizeAt(invoices, dates.Today())
}

func SummarizeAt(invoices []models.Invoice, today dates.Day) Summary {
	acc := NewAccumulator(today)
	for _, inv := range invoices {
		acc.Add(inv)
	}
	return acc.Summary()
}
