package service

import (
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/quistonpe/qiston/internal/invoice"
	"github.com/quistonpe/qiston/internal/models"
	"github.com/quistonpe/qiston/internal/utils"
)

// GenerateInvoicePDF renders one invoice as a PDF file and returns the file
// name it was written to.
func (s *InvoiceService) GenerateInvoicePDF(ctx context.Context, id, fileName string) (string, error) {
	inv, err := s.GetInvoice(ctx, id)
	if err != nil {
		return "", err
	}

	// Only the generated default name is sanitized; an explicit output
	// path from the caller is used as given.
	if fileName == "" {
		fileName = sanitizeFileName(fmt.Sprintf("invoice_%s_%s.pdf", inv.CustomerName, inv.InvoiceDate))
	}

	if err := s.writeInvoicePDF(fileName, inv); err != nil {
		return "", fmt.Errorf("failed to generate invoice PDF: %w", err)
	}
	return fileName, nil
}

func (s *InvoiceService) writeInvoicePDF(fileName string, inv *models.Invoice) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)

	// Header
	pdf.Cell(40, 10, fmt.Sprintf("%s - Invoice", s.cfg.BusinessName))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 8, "Bill To:")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(95, 6, inv.CustomerName)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 8, fmt.Sprintf("Invoice Number: %s", inv.ID))
	pdf.Ln(8)
	pdf.Cell(40, 8, fmt.Sprintf("Invoice Date: %s", inv.InvoiceDate))
	pdf.Ln(8)
	pdf.Cell(40, 8, fmt.Sprintf("Payment Terms: %d days", inv.PaymentTerms))
	pdf.Ln(8)
	pdf.Cell(40, 8, fmt.Sprintf("Due Date: %s", inv.DueDate))
	pdf.Ln(12)

	// Single-line amount table
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(110, 8, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Due", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(110, 8, fmt.Sprintf("Invoice for %s", inv.CustomerName), "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, inv.DueDate, "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, inv.Amount.StringFixed(2), "1", 1, "R", false, 0, "")

	// Total
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(150, 10, "Total:")
	pdf.CellFormat(40, 10, inv.Amount.StringFixed(2), "", 1, "R", false, 0, "")

	// Payment state
	pdf.Ln(5)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 6, fmt.Sprintf("Status: %s", inv.Status))
	pdf.Ln(6)
	pdf.Cell(40, 6, invoice.TimingLabel(inv.Status, inv.DueDate, inv.PaymentDate))
	pdf.Ln(6)
	if inv.Paid() {
		pdf.Cell(40, 6, fmt.Sprintf("Payment Date: %s", utils.FromPtr(inv.PaymentDate)))
		pdf.Ln(6)
	}

	// Payment details
	if s.cfg.BillingBank != "" || s.cfg.BillingAccount != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(40, 8, "Payment Details:")
		pdf.Ln(10)

		pdf.SetFont("Arial", "", 11)
		if s.cfg.BillingBank != "" {
			pdf.Cell(40, 6, fmt.Sprintf("Bank: %s", s.cfg.BillingBank))
			pdf.Ln(6)
		}
		if s.cfg.BillingAccount != "" {
			pdf.Cell(40, 6, fmt.Sprintf("Account: %s", s.cfg.BillingAccount))
			pdf.Ln(6)
		}
		if s.cfg.BillingBSB != "" {
			pdf.Cell(40, 6, fmt.Sprintf("BSB: %s", s.cfg.BillingBSB))
			pdf.Ln(6)
		}
	}

	return pdf.OutputFileAndClose(fileName)
}

func sanitizeFileName(fileName string) string {
	result := ""
	for _, r := range fileName {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' || r == '.' {
			result += string(r)
		} else if r == ' ' {
			result += "_"
		}
	}
	return result
}
