package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"invoicely/models"
	"invoicely/services/invoice"
	"invoicely/utils"

	"go.uber.org/zap"
)

const extractionPromptTemplate = `You are an expert invoice data extraction AI. Analyze the following text and extract the relevant information to create an invoice.
The output MUST be a valid JSON object.

The JSON object should have the following structure:
{
    "clientName": "string",
    "email": "string (if available)",
    "address": "string (if available)",
    "items": [
        {
            "name": "string",
            "quantity": "number",
            "unitPrice": "number"
        }
    ]
}

Here is the text to parse:
--- TEXT START ---
%s
--- TEXT END ---

Extract the data and provide only the JSON object.`

// stripFences removes markdown code-fence wrappers from a generated
// response before JSON parsing.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseInvoiceFromText asks the generator for a structured extraction of the
// free text. The result is a candidate payload only; it goes through the
// normal invoice validation when the caller decides to create.
func (s *DefaultAIService) ParseInvoiceFromText(ctx context.Context, text string) (*models.ExtractedInvoice, error) {
	prompt := fmt.Sprintf(extractionPromptTemplate, text)

	raw, err := s.Gen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, ParsingError{Op: "parse invoice from text", Err: err}
	}

	var extracted models.ExtractedInvoice
	if err := json.Unmarshal([]byte(stripFences(raw)), &extracted); err != nil {
		utils.GetLogger().Warn("AI extraction returned unparseable content", zap.Error(err))
		return nil, ParsingError{Op: "parse invoice from text", Err: err}
	}
	return &extracted, nil
}

// GenerateReminderEmail drafts a payment reminder for one of the owner's
// invoices. The generated text is returned verbatim.
func (s *DefaultAIService) GenerateReminderEmail(ctx context.Context, owner, invoiceID string) (string, error) {
	inv, err := s.Invoices.GetInvoice(ctx, owner, invoiceID)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`You are a professional and polite accounting assistant. Write a friendly reminder email to a client about an overdue payment.

Use the following details to personalize the email:
- Client Name: %s
- Invoice Number: %s
- Due Date: %s

The tone should be friendly but clear. Keep it concise. Start the email with "Subject:".`,
		inv.BillTo.ClientName, inv.InvoiceNumber, inv.DueDate.Format("1/2/2006"))

	text, err := s.Gen.GenerateContent(ctx, prompt)
	if err != nil {
		return "", ParsingError{Op: "generate reminder email", Err: err}
	}
	return text, nil
}

// DashboardInsights summarizes the owner's invoices into a natural-language
// prompt and returns the generated insight strings. With no invoices it
// short-circuits to a canned response without calling the generator.
func (s *DefaultAIService) DashboardInsights(ctx context.Context, owner string) (*models.InsightsResponse, error) {
	invoices, err := s.Invoices.ListInvoices(ctx, owner)
	if err != nil {
		return nil, err
	}

	if len(invoices) == 0 {
		return &models.InsightsResponse{
			Insights: []string{"No invoice data available to generate insights."},
		}, nil
	}

	stats := invoice.ComputeStatistics(invoices)
	paidCount := 0
	for _, inv := range invoices {
		if inv.Status == models.StatusPaid {
			paidCount++
		}
	}
	outstanding := stats.TotalAmount - stats.PaidAmount

	recent := invoices
	if len(recent) > 5 {
		recent = recent[:5]
	}
	recentLines := make([]string, 0, len(recent))
	for _, inv := range recent {
		recentLines = append(recentLines,
			fmt.Sprintf("Invoice #%s for $%.2f with status %s", inv.InvoiceNumber, inv.Total, inv.Status))
	}

	dataSummary := fmt.Sprintf(`
- Total number of invoices: %d
- Total paid invoices: %d
- Total unpaid/pending invoices: %d
- Total revenue from paid invoices: $%.2f
- Total outstanding amount from unpaid/pending invoices: $%.2f
- Recent invoices (last 5): %s`,
		stats.TotalInvoices, paidCount, len(invoices)-paidCount,
		stats.PaidAmount, outstanding, strings.Join(recentLines, ", "))

	prompt := fmt.Sprintf(`
You are a friendly and insightful financial analyst for a small business owner.
Based on the following summary of their invoice data, provide 2-3 concise and actionable insights.
Each insight should be a short string in a JSON array.
The insights should be encouraging and helpful. Do not just repeat the data.
For example, if there is a high outstanding amount, suggest sending reminders. If revenue is high, be encouraging.

Data Summary:
%s

Return your response as a valid JSON object with a single key "insights" which is an array of strings.
Example format: { "insights": ["Your revenue is looking strong this month!", "You have 5 overdue invoices. Consider sending reminders to get paid faster!"] }`,
		dataSummary)

	raw, err := s.Gen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, ParsingError{Op: "generate dashboard insights", Err: err}
	}

	var resp models.InsightsResponse
	if err := json.Unmarshal([]byte(stripFences(raw)), &resp); err != nil {
		utils.GetLogger().Warn("AI insights returned unparseable content", zap.Error(err))
		return nil, ParsingError{Op: "generate dashboard insights", Err: err}
	}
	return &resp, nil
}
