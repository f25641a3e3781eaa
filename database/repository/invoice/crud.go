package invoiceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invoicely/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Insert persists a new invoice and returns its ID.
func (r *mongoInvoiceRepo) Insert(ctx context.Context, inv models.Invoice) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	inv.CreatedAt = time.Now()
	inv.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, inv); err != nil {
		return "", fmt.Errorf("failed to insert invoice: %w", err)
	}
	return inv.ID, nil
}

// GetByID returns an invoice by its ID, or nil when absent.
func (r *mongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var inv models.Invoice
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice: %w", err)
	}
	return &inv, nil
}

// GetByOwner fetches all invoices belonging to an owner. The store gives no
// order guarantee; callers sort for display.
func (r *mongoInvoiceRepo) GetByOwner(ctx context.Context, owner string) ([]models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("failed to decode invoices: %w", err)
	}
	return invoices, nil
}

// UpdateByID applies a partial update and returns the updated document, or
// nil when no invoice matched.
func (r *mongoInvoiceRepo) UpdateByID(ctx context.Context, id string, fields map[string]any) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Invoice
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return &updated, nil
}

// DeleteByIDAndOwner removes an invoice only when both id and owner match,
// returning the deleted document or nil when nothing matched.
func (r *mongoInvoiceRepo) DeleteByIDAndOwner(ctx context.Context, id, owner string) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var deleted models.Invoice
	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id, "owner": owner}).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete invoice: %w", err)
	}
	return &deleted, nil
}
