package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/quistonpe/qiston/internal/config"
	"github.com/quistonpe/qiston/internal/models"
)

type SQLiteDB struct {
	conn *sql.DB
}

func NewDB(cfg *config.Config) (*SQLiteDB, error) {
	conn, err := sql.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &SQLiteDB{conn: conn}, nil
}

func (s *SQLiteDB) Close() error {
	return s.conn.Close()
}

func (s *SQLiteDB) GetConnection() *sql.DB {
	return s.conn
}

// Migrate creates the invoices table if it does not exist. The status
// column is persisted only so external consumers of the database can filter
// on it; readers in this codebase always re-derive status from the dates.
func (s *SQLiteDB) Migrate(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS invoices (
	id TEXT PRIMARY KEY,
	customer_name TEXT NOT NULL,
	amount TEXT NOT NULL,
	invoice_date TEXT NOT NULL,
	payment_terms INTEGER NOT NULL,
	due_date TEXT NOT NULL DEFAULT '',
	payment_date TEXT,
	status TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if _, err := s.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (s *SQLiteDB) CreateInvoice(ctx context.Context, invoice models.Invoice) (*models.Invoice, error) {
	now := time.Now()
	_, err := s.conn.ExecContext(ctx, `
INSERT INTO invoices (id, customer_name, amount, invoice_date, payment_terms, due_date, payment_date, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID,
		invoice.CustomerName,
		invoice.Amount.String(),
		invoice.InvoiceDate,
		invoice.PaymentTerms,
		invoice.DueDate,
		invoice.PaymentDate,
		string(invoice.Status),
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	invoice.CreatedAt = now
	invoice.UpdatedAt = now
	return &invoice, nil
}

func (s *SQLiteDB) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	row := s.conn.QueryRowContext(ctx, `
SELECT id, customer_name, amount, invoice_date, payment_terms, due_date, payment_date, status, created_at, updated_at
FROM invoices WHERE id = ?`, id)
	invoice, err := scanInvoice(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

func (s *SQLiteDB) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	rows, err := s.conn.QueryContext(ctx, `
SELECT id, customer_name, amount, invoice_date, payment_terms, due_date, payment_date, status, created_at, updated_at
FROM invoices ORDER BY invoice_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoices: %w", err)
	}
	return invoices, nil
}

// UpdateInvoice replaces every mutable column of the row; last write wins.
func (s *SQLiteDB) UpdateInvoice(ctx context.Context, invoice models.Invoice) (*models.Invoice, error) {
	now := time.Now()
	result, err := s.conn.ExecContext(ctx, `
UPDATE invoices
SET customer_name = ?, amount = ?, invoice_date = ?, payment_terms = ?, due_date = ?, payment_date = ?, status = ?, updated_at = ?
WHERE id = ?`,
		invoice.CustomerName,
		invoice.Amount.String(),
		invoice.InvoiceDate,
		invoice.PaymentTerms,
		invoice.DueDate,
		invoice.PaymentDate,
		string(invoice.Status),
		now,
		invoice.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}
	invoice.UpdatedAt = now
	return &invoice, nil
}

func (s *SQLiteDB) DeleteAllInvoices(ctx context.Context) error {
	if _, err := s.conn.ExecContext(ctx, `DELETE FROM invoices`); err != nil {
		return fmt.Errorf("failed to delete invoices: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row rowScanner) (*models.Invoice, error) {
	var invoice models.Invoice
	var amount string
	var status string
	if err := row.Scan(
		&invoice.ID,
		&invoice.CustomerName,
		&amount,
		&invoice.InvoiceDate,
		&invoice.PaymentTerms,
		&invoice.DueDate,
		&invoice.PaymentDate,
		&status,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	); err != nil {
		return nil, err
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
	}
	invoice.Amount = parsed
	invoice.Status = models.Status(status)
	return &invoice, nil
}
