package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quistonpe/qiston/internal/config"
	"github.com/quistonpe/qiston/internal/database"
	"github.com/quistonpe/qiston/internal/service"
)

func TestIntegrationQistonCommands(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "qiston-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	cfg := &config.Config{
		DatabaseURL:    filepath.Join(tempDir, "test.db"),
		DatabaseDriver: "sqlite3",
		BusinessName:   "QistonPe Test",
		DevMode:        true,
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	invoiceService := service.NewInvoiceService(db, cfg)
	rootCmd := newRootCmd(invoiceService)

	var invoiceID string

	t.Run("Invoice Add", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"add", "-c", "Sharma Textiles", "-a", "48500", "-d", "2024-01-01", "-t", "30"})
			err := rootCmd.ExecuteContext(ctx)
			if err != nil {
				t.Errorf("Add command failed: %v", err)
			}
		})

		if !strings.Contains(output, "Added invoice") {
			t.Errorf("Expected 'Added invoice' in output, got: %s", output)
		}
		if !strings.Contains(output, "due 2024-01-31") {
			t.Errorf("Expected derived due date 2024-01-31 in output, got: %s", output)
		}

		invoiceID = extractInvoiceID(output)
		if invoiceID == "" {
			t.Fatalf("Could not extract invoice ID from output: %s", output)
		}
	})

	t.Run("Invoice List", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"list"})
			err := rootCmd.ExecuteContext(ctx)
			if err != nil {
				t.Errorf("List command failed: %v", err)
			}
		})

		if !strings.Contains(output, "Sharma Textiles") {
			t.Errorf("Expected 'Sharma Textiles' in output, got: %s", output)
		}
		// A 2024 invoice is long past due by the time this test runs.
		if !strings.Contains(output, "overdue") {
			t.Errorf("Expected 'overdue' status in output, got: %s", output)
		}
	})

	t.Run("Invoice Pay", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"pay", invoiceID, "-d", "2024-02-02"})
			err := rootCmd.ExecuteContext(ctx)
			if err != nil {
				t.Errorf("Pay command failed: %v", err)
			}
		})

		if !strings.Contains(output, "Recorded payment") {
			t.Errorf("Expected 'Recorded payment' in output, got: %s", output)
		}
	})

	t.Run("Invoice Pay Already Paid", func(t *testing.T) {
		rootCmd.SetArgs([]string{"pay", invoiceID})
		rootCmd.SilenceErrors = true
		rootCmd.SilenceUsage = true
		err := rootCmd.ExecuteContext(ctx)
		if err == nil {
			t.Error("Expected error when paying an already paid invoice")
		} else if !strings.Contains(err.Error(), "already paid") {
			t.Errorf("Expected 'already paid' error, got: %v", err)
		}
	})

	t.Run("Invoice List Paid Filter", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"list", "-s", "paid"})
			err := rootCmd.ExecuteContext(ctx)
			if err != nil {
				t.Errorf("List command failed: %v", err)
			}
		})

		if !strings.Contains(output, "Paid 2 days late") {
			t.Errorf("Expected 'Paid 2 days late' timing label in output, got: %s", output)
		}
	})

	t.Run("Invoice Update", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"update", invoiceID, "-c", "Sharma Textiles Pvt Ltd"})
			err := rootCmd.ExecuteContext(ctx)
			if err != nil {
				t.Errorf("Update command failed: %v", err)
			}
		})

		if !strings.Contains(output, "Sharma Textiles Pvt Ltd") {
			t.Errorf("Expected updated customer name in output, got: %s", output)
		}
	})

	t.Run("Summary", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"summary"})
			err := rootCmd.ExecuteContext(ctx)
			if err != nil {
				t.Errorf("Summary command failed: %v", err)
			}
		})

		if !strings.Contains(output, "Outstanding:") {
			t.Errorf("Expected 'Outstanding:' in output, got: %s", output)
		}
		// The only invoice is paid 2 days late.
		if !strings.Contains(output, "Avg delay:       2.0 days") {
			t.Errorf("Expected 2.0 day average delay in output, got: %s", output)
		}
	})

	t.Run("Export CSV", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"export"})
			err := rootCmd.ExecuteContext(ctx)
			if err != nil {
				t.Errorf("Export command failed: %v", err)
			}
		})

		if !strings.Contains(output, "ID,Customer,Amount") {
			t.Errorf("Expected CSV header in output, got: %s", output)
		}
		if !strings.Contains(output, "Sharma Textiles Pvt Ltd") {
			t.Errorf("Expected invoice row in CSV output, got: %s", output)
		}
	})

	t.Run("Export PDF", func(t *testing.T) {
		pdfPath := filepath.Join(tempDir, "invoice.pdf")
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"export", "--pdf", invoiceID, "-o", pdfPath})
			err := rootCmd.ExecuteContext(ctx)
			if err != nil {
				t.Errorf("Export PDF command failed: %v", err)
			}
		})

		if !strings.Contains(output, "Generated invoice PDF") {
			t.Errorf("Expected 'Generated invoice PDF' in output, got: %s", output)
		}
		if !strings.Contains(output, pdfPath) {
			t.Errorf("Expected output path %s in output, got: %s", pdfPath, output)
		}

		// The file must land at the exact path given, not a mangled
		// relative name in the working directory.
		if _, err := os.Stat(pdfPath); err != nil {
			t.Errorf("Expected PDF at %s: %v", pdfPath, err)
		}
	})

	t.Run("Seed", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"seed"})
			err := rootCmd.ExecuteContext(ctx)
			if err != nil {
				t.Errorf("Seed command failed: %v", err)
			}
		})

		if !strings.Contains(output, "Seeded 4 invoices") {
			t.Errorf("Expected 'Seeded 4 invoices' in output, got: %s", output)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"clear", "--force"})
			err := rootCmd.ExecuteContext(ctx)
			if err != nil {
				t.Errorf("Clear command failed: %v", err)
			}
		})

		if !strings.Contains(output, "All invoices deleted") {
			t.Errorf("Expected 'All invoices deleted' in output, got: %s", output)
		}

		output = captureOutput(func() {
			rootCmd.SetArgs([]string{"list"})
			err := rootCmd.ExecuteContext(ctx)
			if err != nil {
				t.Errorf("List command failed: %v", err)
			}
		})

		if !strings.Contains(output, "No invoices found") {
			t.Errorf("Expected 'No invoices found' after clear, got: %s", output)
		}
	})
}

func extractInvoiceID(output string) string {
	for _, field := range strings.Fields(output) {
		if strings.HasPrefix(field, "INV-") {
			return field
		}
	}
	return ""
}

func captureOutput(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}
