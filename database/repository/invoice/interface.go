package invoiceRepo

import (
	"context"

	"invoicely/database"
	"invoicely/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InvoiceRepository defines methods for invoice data access. Lookups that
// miss return (nil, nil); the service layer decides what a miss means.
type InvoiceRepository interface {
	// Insert persists a new invoice, assigning an ID if absent, and returns the ID.
	Insert(ctx context.Context, inv models.Invoice) (string, error)
	// GetByID retrieves an invoice by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	// GetByOwner retrieves all invoices belonging to an owner.
	GetByOwner(ctx context.Context, owner string) ([]models.Invoice, error)
	// UpdateByID applies a partial $set update and returns the updated invoice.
	UpdateByID(ctx context.Context, id string, fields map[string]any) (*models.Invoice, error)
	// DeleteByIDAndOwner atomically removes an invoice matching both id and
	// owner, returning the deleted document.
	DeleteByIDAndOwner(ctx context.Context, id, owner string) (*models.Invoice, error)
	// AggregateStats reduces an owner's invoices to summed totals by status.
	AggregateStats(ctx context.Context, owner string) (*models.InvoiceStats, error)
}

type mongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo returns a new InvoiceRepository instance using MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	repo := &mongoInvoiceRepo{
		coll: database.DB().Collection("invoices"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}
