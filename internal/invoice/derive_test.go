package invoice

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quistonpe/qiston/internal/dates"
	"github.com/quistonpe/qiston/internal/models"
	"github.com/quistonpe/qiston/internal/utils"
)

func mustDay(t *testing.T, value string) dates.Day {
	t.Helper()
	day, ok := dates.Normalize(value)
	require.True(t, ok, "expected %q to normalize", value)
	return day
}

func TestComputeDueDate(t *testing.T) {
	assert.Equal(t, "2024-02-04", ComputeDueDate("2024-01-20", 15))
	assert.Equal(t, "2024-01-31", ComputeDueDate("2024-01-01", 30))
	assert.Equal(t, "2025-01-14", ComputeDueDate("2024-12-15", 30))
	assert.Equal(t, "2024-01-01", ComputeDueDate("2024-01-01", 0))
}

func TestComputeDueDateBadInput(t *testing.T) {
	assert.Equal(t, "", ComputeDueDate("", 30))
	assert.Equal(t, "", ComputeDueDate("garbage", 30))
	assert.Equal(t, "", ComputeDueDate("2024-01-01", -5))
}

func TestStatusPaidWinsUnconditionally(t *testing.T) {
	today := mustDay(t, "2024-02-15")

	// Payment recorded long after the due date still means paid.
	status := StatusAt(utils.ToPtr("2024-01-01"), "2023-01-01", today)
	assert.Equal(t, models.StatusPaid, status)

	// Even an unparseable due date cannot demote a paid invoice.
	status = StatusAt(utils.ToPtr("2024-01-01"), "", today)
	assert.Equal(t, models.StatusPaid, status)
}

func TestStatusFromDueDate(t *testing.T) {
	today := mustDay(t, "2024-02-15")

	tests := []struct {
		dueDate string
		want    models.Status
	}{
		{"2024-02-14", models.StatusOverdue},
		{"2024-02-15", models.StatusPending},
		{"2024-02-16", models.StatusPending},
		{"", models.StatusPending},
		{"garbage", models.StatusPending},
	}

	for _, tt := range tests {
		got := StatusAt(nil, tt.dueDate, today)
		assert.Equal(t, tt.want, got, "dueDate=%q", tt.dueDate)
	}

	// An empty payment date string behaves like no payment at all.
	got := StatusAt(utils.ToPtr(""), "2024-02-14", today)
	assert.Equal(t, models.StatusOverdue, got)
}

func TestTimingLabelPaid(t *testing.T) {
	today := mustDay(t, "2024-02-15")

	tests := []struct {
		name        string
		dueDate     string
		paymentDate string
		want        string
	}{
		{"on time", "2024-01-31", "2024-01-31", "Paid on time"},
		{"late", "2024-01-31", "2024-02-02", "Paid 2 days late"},
		{"early", "2024-01-31", "2024-01-28", "Paid 3 days early"},
		{"bad due date", "", "2024-01-28", "Paid"},
		{"bad payment date", "2024-01-31", "garbage", "Paid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimingLabelAt(models.StatusPaid, tt.dueDate, utils.ToPtr(tt.paymentDate), today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimingLabelUnpaid(t *testing.T) {
	today := mustDay(t, "2024-02-15")

	tests := []struct {
		name    string
		status  models.Status
		dueDate string
		want    string
	}{
		{"overdue by days", models.StatusOverdue, "2024-01-31", "Overdue by 15 days"},
		{"overdue today", models.StatusOverdue, "2024-02-15", "Overdue today"},
		{"overdue bad date", models.StatusOverdue, "", "Overdue"},
		{"due today", models.StatusPending, "2024-02-15", "Due today"},
		{"due in days", models.StatusPending, "2024-02-18", "Due in 3 days"},
		{"pending bad date", models.StatusPending, "", "Pending"},
		{"pending but past due", models.StatusPending, "2024-02-10", "Overdue by 5 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimingLabelAt(tt.status, tt.dueDate, nil, today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeFillsDueDateAndStatus(t *testing.T) {
	today := mustDay(t, "2024-02-15")

	raw := models.Invoice{
		ID:           "INV-1",
		CustomerName: "Sharma Textiles",
		Amount:       decimal.NewFromInt(1000),
		InvoiceDate:  "2024-01-01",
		PaymentTerms: 30,
		Status:       models.StatusPaid, // stale stored status
	}

	normalized := NormalizeAt(raw, today)
	assert.Equal(t, "2024-01-31", normalized.DueDate)
	assert.Equal(t, models.StatusOverdue, normalized.Status)

	// Input is untouched.
	assert.Equal(t, "", raw.DueDate)
	assert.Equal(t, models.StatusPaid, raw.Status)
}

func TestNormalizeKeepsExplicitDueDate(t *testing.T) {
	today := mustDay(t, "2024-02-15")

	raw := models.Invoice{
		InvoiceDate:  "2024-01-01",
		PaymentTerms: 30,
		DueDate:      "2024-03-01",
	}

	normalized := NormalizeAt(raw, today)
	assert.Equal(t, "2024-03-01", normalized.DueDate)
	assert.Equal(t, models.StatusPending, normalized.Status)
}

func TestNormalizeIdempotent(t *testing.T) {
	today := mustDay(t, "2024-02-15")

	invoices := []models.Invoice{
		{InvoiceDate: "2024-01-01", PaymentTerms: 30},
		{InvoiceDate: "2024-02-01", PaymentTerms: 30, PaymentDate: utils.ToPtr("2024-02-10")},
		{InvoiceDate: "garbage", PaymentTerms: 30},
		{InvoiceDate: "2024-02-10", PaymentTerms: 14, DueDate: "2024-02-20"},
	}

	for _, raw := range invoices {
		once := NormalizeAt(raw, today)
		twice := NormalizeAt(once, today)
		assert.Equal(t, once, twice)
	}
}

func TestNewDerivesFields(t *testing.T) {
	inv := New(CreateParams{
		CustomerName: "Patel Hardware",
		Amount:       decimal.NewFromInt(500),
		InvoiceDate:  "2024-01-20",
		PaymentTerms: 15,
	})

	assert.True(t, strings.HasPrefix(inv.ID, "INV-"))
	assert.Equal(t, "2024-02-04", inv.DueDate)
	assert.Nil(t, inv.PaymentDate)
	assert.True(t, inv.Status.Valid())
}

func TestNewKeepsCallerID(t *testing.T) {
	inv := New(CreateParams{
		ID:           "INV-custom",
		CustomerName: "Patel Hardware",
		Amount:       decimal.NewFromInt(500),
		InvoiceDate:  "2024-01-20",
		PaymentTerms: 15,
		PaymentDate:  utils.ToPtr("2024-01-25"),
	})

	assert.Equal(t, "INV-custom", inv.ID)
	assert.Equal(t, models.StatusPaid, inv.Status)
}
