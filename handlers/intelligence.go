package handlers

import (
	"errors"
	"net/http"

	"invoicely/models"
	ai "invoicely/services/intelligence"
	"invoicely/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the generative endpoints.
type AIHandler struct {
	Service ai.AIService
}

func NewAIHandler(svc ai.AIService) *AIHandler {
	return &AIHandler{Service: svc}
}

// ParseInvoiceTextRequest is the payload for text extraction.
type ParseInvoiceTextRequest struct {
	Text string `json:"text"`
}

// GenerateReminderRequest identifies the invoice to draft a reminder for.
type GenerateReminderRequest struct {
	InvoiceID string `json:"invoiceId"`
}

// ParseInvoiceTextHandler handles POST /api/ai/parse-text.
func (h *AIHandler) ParseInvoiceTextHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req ParseInvoiceTextRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Text is required"})
		return
	}

	extracted, err := h.Service.ParseInvoiceFromText(c.Request.Context(), req.Text)
	if err != nil {
		logger.Error("Failed to parse invoice from text", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to parse invoice data from text.",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, extracted)
}

// GenerateReminderHandler handles POST /api/ai/generate-reminder.
func (h *AIHandler) GenerateReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	var req GenerateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.InvoiceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invoice ID is required"})
		return
	}

	text, err := h.Service.GenerateReminderEmail(c.Request.Context(), owner, req.InvoiceID)
	if err != nil {
		logger.Error("Failed to generate reminder email",
			zap.String("invoiceID", req.InvoiceID), zap.Error(err))
		var parsing ai.ParsingError
		if errors.As(err, &parsing) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to generate reminder email",
				"details": err.Error(),
			})
			return
		}
		c.JSON(statusForInvoiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ReminderResponse{ReminderText: text})
}

// DashboardSummaryHandler handles GET /api/ai/dashboard-summary.
func (h *AIHandler) DashboardSummaryHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	insights, err := h.Service.DashboardInsights(c.Request.Context(), owner)
	if err != nil {
		utils.GetLogger().Error("Failed to generate dashboard insights",
			zap.String("owner", owner), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to generate dashboard insights.",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, insights)
}
