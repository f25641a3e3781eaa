package invoice

import (
	"time"

	"invoicely/models"
)

// LineItemInput is one item row as supplied by the caller. Numeric fields
// use FlexNumber so malformed values coerce to zero instead of rejecting the
// whole request.
type LineItemInput struct {
	Name       string            `json:"name"`
	Quantity   models.FlexNumber `json:"quantity"`
	UnitPrice  models.FlexNumber `json:"unitPrice"`
	TaxPercent models.FlexNumber `json:"taxPercent"`
}

// CreateInvoiceInput carries the caller-supplied fields for a new invoice.
// Totals are never accepted from the caller.
type CreateInvoiceInput struct {
	InvoiceNumber string           `json:"invoiceNumber"`
	InvoiceDate   time.Time        `json:"invoiceDate"`
	DueDate       time.Time        `json:"dueDate"`
	BillFrom      *models.BillFrom `json:"billFrom"`
	BillTo        *models.BillTo   `json:"billTo"`
	Items         []LineItemInput  `json:"items"`
	Notes         string           `json:"notes"`
	PaymentTerms  string           `json:"paymentTerms"`
}

// UpdateInvoiceInput carries a partial update. Nil pointers and a nil Items
// slice mean "leave unchanged"; supplying Items recomputes all totals.
type UpdateInvoiceInput struct {
	InvoiceNumber *string          `json:"invoiceNumber"`
	InvoiceDate   *time.Time       `json:"invoiceDate"`
	DueDate       *time.Time       `json:"dueDate"`
	BillFrom      *models.BillFrom `json:"billFrom"`
	BillTo        *models.BillTo   `json:"billTo"`
	Items         []LineItemInput  `json:"items"`
	Notes         *string          `json:"notes"`
	PaymentTerms  *string          `json:"paymentTerms"`
	Status        *string          `json:"status"`
}

// DeleteConfirmation reports a completed delete.
type DeleteConfirmation struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
