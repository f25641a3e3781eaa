package invoice

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"invoicely/models"
	"invoicely/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// validateID rejects malformed identifiers before any store access.
func validateID(id string) error {
	if uuid.Validate(id) != nil {
		return InvalidIDError{ID: id}
	}
	return nil
}

// billFromProfile builds the issuing party from the owner's profile,
// falling back to the account name when no business name is set. Missing
// profile fields come through as empty strings.
func billFromProfile(user *models.User) models.BillFrom {
	bf := models.BillFrom{}
	if user == nil {
		return bf
	}
	bf.BusinessName = user.BusinessName
	if bf.BusinessName == "" {
		bf.BusinessName = user.Name
	}
	bf.Email = user.Email
	bf.Address = user.Address
	bf.Phone = user.Phone
	return bf
}

// nextInvoiceNumber derives a display number from the owner's existing
// invoices: maximum numeric suffix plus one, INV-prefixed and zero-padded.
func nextInvoiceNumber(invoices []models.Invoice) string {
	maxNum := 0
	for _, inv := range invoices {
		idx := strings.LastIndex(inv.InvoiceNumber, "-")
		if idx < 0 {
			continue
		}
		if n, err := strconv.Atoi(inv.InvoiceNumber[idx+1:]); err == nil && n > maxNum {
			maxNum = n
		}
	}
	return fmt.Sprintf("INV-%03d", maxNum+1)
}

func validStatus(status string) bool {
	switch status {
	case models.StatusPending, models.StatusPaid, models.StatusUnpaid:
		return true
	}
	return false
}

// CreateInvoice validates the payload, computes totals and persists a new
// invoice for the owner.
func (s *DefaultInvoiceService) CreateInvoice(ctx context.Context, owner string, in CreateInvoiceInput) (*models.Invoice, error) {
	logger := utils.GetLogger()

	var missing []string
	if in.BillTo == nil || in.BillTo.ClientName == "" {
		missing = append(missing, "billTo")
	}
	if len(in.Items) == 0 {
		missing = append(missing, "items")
	}
	if len(missing) > 0 {
		return nil, ValidationError{Fields: missing}
	}

	profile, err := s.Users.GetByID(ctx, owner)
	if err != nil {
		return nil, PersistenceError{Op: "load owner profile", Err: err}
	}

	billFrom := billFromProfile(profile)
	if in.BillFrom != nil {
		billFrom = *in.BillFrom
	}

	invoiceNumber := in.InvoiceNumber
	if invoiceNumber == "" {
		existing, err := s.Repo.GetByOwner(ctx, owner)
		if err != nil {
			return nil, PersistenceError{Op: "derive invoice number", Err: err}
		}
		invoiceNumber = nextInvoiceNumber(existing)
	}

	lines, totals := ComputeTotals(in.Items)

	inv := models.Invoice{
		Owner:         owner,
		InvoiceNumber: invoiceNumber,
		InvoiceDate:   in.InvoiceDate,
		DueDate:       in.DueDate,
		BillFrom:      billFrom,
		BillTo:        *in.BillTo,
		Items:         lines,
		Notes:         in.Notes,
		PaymentTerms:  in.PaymentTerms,
		Status:        models.StatusPending,
		Subtotal:      totals.Subtotal,
		TaxTotal:      totals.TaxTotal,
		Total:         totals.Total,
	}

	id, err := s.Repo.Insert(ctx, inv)
	if err != nil {
		return nil, PersistenceError{Op: "insert invoice", Err: err}
	}

	created, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, PersistenceError{Op: "reload invoice", Err: err}
	}
	logger.Info("Invoice created",
		zap.String("invoiceID", id),
		zap.String("invoiceNumber", invoiceNumber),
		zap.String("owner", owner))
	return created, nil
}

// GetInvoice returns a single invoice. Only the read path distinguishes
// ownership mismatch from absence.
func (s *DefaultInvoiceService) GetInvoice(ctx context.Context, owner, id string) (*models.Invoice, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	inv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, PersistenceError{Op: "fetch invoice", Err: err}
	}
	if inv == nil {
		return nil, NotFoundError{ID: id}
	}
	if inv.Owner != owner {
		return nil, UnauthorizedError{ID: id}
	}

	s.backfillBillFrom(ctx, owner, inv)
	return inv, nil
}

// ListInvoices returns all of the owner's invoices, newest invoice date
// first for display.
func (s *DefaultInvoiceService) ListInvoices(ctx context.Context, owner string) ([]models.Invoice, error) {
	invoices, err := s.Repo.GetByOwner(ctx, owner)
	if err != nil {
		return nil, PersistenceError{Op: "list invoices", Err: err}
	}

	var profile *models.User
	for i := range invoices {
		if invoices[i].BillFrom.BusinessName != "" {
			continue
		}
		if profile == nil {
			profile, err = s.Users.GetByID(ctx, owner)
			if err != nil {
				return nil, PersistenceError{Op: "load owner profile", Err: err}
			}
		}
		invoices[i].BillFrom = billFromProfile(profile)
	}

	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].InvoiceDate.After(invoices[j].InvoiceDate)
	})
	return invoices, nil
}

// UpdateInvoice applies a partial update. Supplying items recomputes all
// totals; omitting them carries items and totals forward unchanged.
// Ownership mismatches collapse into not-found.
func (s *DefaultInvoiceService) UpdateInvoice(ctx context.Context, owner, id string, in UpdateInvoiceInput) (*models.Invoice, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, PersistenceError{Op: "fetch invoice", Err: err}
	}
	if current == nil || current.Owner != owner {
		return nil, NotFoundError{ID: id}
	}

	fields := map[string]any{}
	if in.InvoiceNumber != nil {
		fields["invoiceNumber"] = *in.InvoiceNumber
	}
	if in.InvoiceDate != nil {
		fields["invoiceDate"] = *in.InvoiceDate
	}
	if in.DueDate != nil {
		fields["dueDate"] = *in.DueDate
	}
	if in.BillFrom != nil {
		fields["billFrom"] = *in.BillFrom
	}
	if in.BillTo != nil {
		fields["billTo"] = *in.BillTo
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	if in.PaymentTerms != nil {
		fields["paymentTerms"] = *in.PaymentTerms
	}
	if in.Status != nil {
		if !validStatus(*in.Status) {
			return nil, ValidationError{Fields: []string{"status"}}
		}
		fields["status"] = *in.Status
	}
	if len(in.Items) > 0 {
		lines, totals := ComputeTotals(in.Items)
		fields["items"] = lines
		fields["subtotal"] = totals.Subtotal
		fields["taxTotal"] = totals.TaxTotal
		fields["total"] = totals.Total
	}

	updated, err := s.Repo.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, PersistenceError{Op: "update invoice", Err: err}
	}
	if updated == nil {
		return nil, NotFoundError{ID: id}
	}
	return updated, nil
}

// DeleteInvoice removes an invoice owned by the caller. A mismatched owner
// reports not-found, leaving the record untouched.
func (s *DefaultInvoiceService) DeleteInvoice(ctx context.Context, owner, id string) (*DeleteConfirmation, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	deleted, err := s.Repo.DeleteByIDAndOwner(ctx, id, owner)
	if err != nil {
		return nil, PersistenceError{Op: "delete invoice", Err: err}
	}
	if deleted == nil {
		return nil, NotFoundError{ID: id}
	}

	utils.GetLogger().Info("Invoice deleted",
		zap.String("invoiceID", deleted.ID),
		zap.String("owner", owner))
	return &DeleteConfirmation{ID: deleted.ID, Message: "Invoice deleted successfully"}, nil
}

// Statistics returns the owner's dashboard summary, reduced by the store.
func (s *DefaultInvoiceService) Statistics(ctx context.Context, owner string) (*models.InvoiceStats, error) {
	stats, err := s.Repo.AggregateStats(ctx, owner)
	if err != nil {
		return nil, PersistenceError{Op: "aggregate invoice stats", Err: err}
	}
	return stats, nil
}

// backfillBillFrom fills the issuing party from the owner's profile for
// legacy records stored without a business name. Display-only; the stored
// document is not rewritten.
func (s *DefaultInvoiceService) backfillBillFrom(ctx context.Context, owner string, inv *models.Invoice) {
	if inv.BillFrom.BusinessName != "" {
		return
	}
	profile, err := s.Users.GetByID(ctx, owner)
	if err != nil {
		utils.GetLogger().Warn("Failed to load profile for billFrom backfill",
			zap.String("owner", owner), zap.Error(err))
		return
	}
	inv.BillFrom = billFromProfile(profile)
}
