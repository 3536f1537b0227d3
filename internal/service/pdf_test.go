package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quistonpe/qiston/internal/invoice"
)

func TestGenerateInvoicePDFKeepsExplicitPath(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	inv := createTestInvoice(t, svc, invoice.CreateParams{
		CustomerName: "Sharma Textiles",
		Amount:       decimal.NewFromInt(48500),
		InvoiceDate:  "2024-01-01",
		PaymentTerms: 30,
	})

	// An explicit output path, slashes and all, is used as given.
	pdfPath := filepath.Join(t.TempDir(), "out", "invoice.pdf")
	require.NoError(t, os.MkdirAll(filepath.Dir(pdfPath), 0o755))

	fileName, err := svc.GenerateInvoicePDF(ctx, inv.ID, pdfPath)
	require.NoError(t, err)
	assert.Equal(t, pdfPath, fileName)

	_, err = os.Stat(pdfPath)
	assert.NoError(t, err)
}

func TestGenerateInvoicePDFSanitizesDefaultName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	inv := createTestInvoice(t, svc, invoice.CreateParams{
		CustomerName: "Sharma Textiles & Co",
		Amount:       decimal.NewFromInt(48500),
		InvoiceDate:  "2024-01-01",
		PaymentTerms: 30,
	})

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	fileName, err := svc.GenerateInvoicePDF(ctx, inv.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "invoice_Sharma_Textiles__Co_2024-01-01.pdf", fileName)

	_, err = os.Stat(fileName)
	assert.NoError(t, err)
}
