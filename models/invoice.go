package models

import "time"

// Invoice payment statuses.
const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
	StatusUnpaid  = "Unpaid"
)

// BillFrom is the issuing party, defaulted from the owner's profile when the
// request omits it.
type BillFrom struct {
	BusinessName string `bson:"businessName" json:"businessName"`
	Email        string `bson:"email" json:"email"`
	Address      string `bson:"address" json:"address"`
	Phone        string `bson:"phone" json:"phone"`
}

// BillTo is the client being invoiced.
type BillTo struct {
	ClientName string `bson:"clientName" json:"clientName"`
	Email      string `bson:"email" json:"email"`
	Address    string `bson:"address" json:"address"`
	Phone      string `bson:"phone" json:"phone"`
}

// LineItem is one billable row. Total is quantity times unit price, not
// tax-inclusive; all derived values are computed server-side.
type LineItem struct {
	Name       string  `bson:"name" json:"name"`
	Quantity   float64 `bson:"quantity" json:"quantity"`
	UnitPrice  float64 `bson:"unitPrice" json:"unitPrice"`
	TaxPercent float64 `bson:"taxPercent" json:"taxPercent"`
	Total      float64 `bson:"total" json:"total"`
}

// Invoice is the persisted aggregate. Subtotal, TaxTotal and Total are never
// taken from the caller; they are recomputed from Items on every write.
type Invoice struct {
	ID            string     `bson:"id" json:"id"`
	Owner         string     `bson:"owner" json:"owner"`
	InvoiceNumber string     `bson:"invoiceNumber" json:"invoiceNumber"`
	InvoiceDate   time.Time  `bson:"invoiceDate" json:"invoiceDate"`
	DueDate       time.Time  `bson:"dueDate" json:"dueDate"`
	BillFrom      BillFrom   `bson:"billFrom" json:"billFrom"`
	BillTo        BillTo     `bson:"billTo" json:"billTo"`
	Items         []LineItem `bson:"items" json:"items"`
	Notes         string     `bson:"notes,omitempty" json:"notes,omitempty"`
	PaymentTerms  string     `bson:"paymentTerms,omitempty" json:"paymentTerms,omitempty"`
	Status        string     `bson:"status" json:"status"`
	Subtotal      float64    `bson:"subtotal" json:"subtotal"`
	TaxTotal      float64    `bson:"taxTotal" json:"taxTotal"`
	Total         float64    `bson:"total" json:"total"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// InvoiceStats is the per-owner dashboard summary.
type InvoiceStats struct {
	TotalInvoices int64   `bson:"totalInvoices" json:"totalInvoices"`
	TotalAmount   float64 `bson:"totalAmount" json:"totalAmount"`
	PaidAmount    float64 `bson:"paidAmount" json:"paidAmount"`
	PendingAmount float64 `bson:"pendingAmount" json:"pendingAmount"`
	OverdueAmount float64 `bson:"overdueAmount" json:"overdueAmount"`
}
