package invoiceRepo

import (
	"context"
	"fmt"
	"time"

	"invoicely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// statusSum builds a $sum expression that only counts invoices in the given
// status, treating missing or non-numeric totals as 0.
func statusSum(status string) bson.M {
	return bson.M{
		"$sum": bson.M{
			"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", status}},
				bson.M{"$ifNull": bson.A{"$total", 0}},
				0,
			},
		},
	}
}

// AggregateStats reduces an owner's invoices to counts and sums by status on
// the server side.
func (r *mongoInvoiceRepo) AggregateStats(ctx context.Context, owner string) (*models.InvoiceStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": owner}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"totalInvoices": bson.M{"$sum": 1},
			"totalAmount":   bson.M{"$sum": bson.M{"$ifNull": bson.A{"$total", 0}}},
			"paidAmount":    statusSum(models.StatusPaid),
			"pendingAmount": statusSum(models.StatusPending),
			"overdueAmount": statusSum(models.StatusUnpaid),
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate invoice stats: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.InvoiceStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode invoice stats: %w", err)
	}
	if len(results) == 0 {
		return &models.InvoiceStats{}, nil
	}
	return &results[0], nil
}
