package ai

import (
	"context"

	"invoicely/models"
	"invoicely/services/invoice"
)

// TextGenerator is the narrow boundary to the external generative-text
// service. The service treats the returned text as opaque.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AIService exposes the generative operations: invoice extraction from free
// text, reminder email drafting and dashboard insights.
type AIService interface {
	ParseInvoiceFromText(ctx context.Context, text string) (*models.ExtractedInvoice, error)
	GenerateReminderEmail(ctx context.Context, owner, invoiceID string) (string, error)
	DashboardInsights(ctx context.Context, owner string) (*models.InsightsResponse, error)
}

// DefaultAIService is the production implementation.
type DefaultAIService struct {
	Gen      TextGenerator
	Invoices invoice.InvoiceService
}

// NewDefaultAIService wires the generator and the invoice service.
func NewDefaultAIService(gen TextGenerator, invoices invoice.InvoiceService) *DefaultAIService {
	return &DefaultAIService{Gen: gen, Invoices: invoices}
}
