package models

// ExtractedItem is one line item pulled out of free text by the extraction
// prompt. Quantities use FlexNumber because the generated JSON sometimes
// quotes numbers.
type ExtractedItem struct {
	Name      string     `json:"name"`
	Quantity  FlexNumber `json:"quantity"`
	UnitPrice FlexNumber `json:"unitPrice"`
}

// ExtractedInvoice is the candidate payload produced by text extraction. It
// is not a persisted invoice; the frontend feeds it back through the normal
// create flow, validation included.
type ExtractedInvoice struct {
	ClientName string          `json:"clientName"`
	Email      string          `json:"email,omitempty"`
	Address    string          `json:"address,omitempty"`
	Items      []ExtractedItem `json:"items"`
}

// InsightsResponse wraps the dashboard insight strings.
type InsightsResponse struct {
	Insights []string `json:"insights"`
}

// ReminderResponse wraps a generated reminder email body.
type ReminderResponse struct {
	ReminderText string `json:"reminderText"`
}
