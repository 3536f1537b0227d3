package database

import (
	"context"

	"github.com/quistonpe/qiston/internal/models"
)

type DB interface {
	Close() error
	Migrate(ctx context.Context) error

	CreateInvoice(ctx context.Context, invoice models.Invoice) (*models.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)
	ListInvoices(ctx context.Context) ([]*models.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice models.Invoice) (*models.Invoice, error)
	DeleteAllInvoices(ctx context.Context) error
}
