package invoice

import (
	"context"

	invoiceRepo "invoicely/database/repository/invoice"
	userRepo "invoicely/database/repository/user"
	"invoicely/models"
)

// InvoiceService owns invoice construction, mutation and aggregation. Every
// operation is scoped to the authenticated owner.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, owner string, in CreateInvoiceInput) (*models.Invoice, error)
	GetInvoice(ctx context.Context, owner, id string) (*models.Invoice, error)
	ListInvoices(ctx context.Context, owner string) ([]models.Invoice, error)
	UpdateInvoice(ctx context.Context, owner, id string, in UpdateInvoiceInput) (*models.Invoice, error)
	DeleteInvoice(ctx context.Context, owner, id string) (*DeleteConfirmation, error)
	Statistics(ctx context.Context, owner string) (*models.InvoiceStats, error)
}

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	Repo  invoiceRepo.InvoiceRepository
	Users userRepo.UserRepository
}
