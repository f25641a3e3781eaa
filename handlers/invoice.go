package handlers

import (
	"net/http"

	"invoicely/services/invoice"
	"invoicely/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler serves the invoice CRUD and statistics endpoints.
type InvoiceHandler struct {
	Service invoice.InvoiceService
}

func NewInvoiceHandler(svc invoice.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: svc}
}

// CreateInvoiceHandler handles POST /api/invoices.
func (h *InvoiceHandler) CreateInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	var in invoice.CreateInvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid create invoice request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.Service.CreateInvoice(c.Request.Context(), owner, in)
	if err != nil {
		logger.Error("Failed to create invoice", zap.String("owner", owner), zap.Error(err))
		c.JSON(statusForInvoiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// GetInvoicesHandler handles GET /api/invoices.
func (h *InvoiceHandler) GetInvoicesHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	invoices, err := h.Service.ListInvoices(c.Request.Context(), owner)
	if err != nil {
		utils.GetLogger().Error("Failed to list invoices", zap.String("owner", owner), zap.Error(err))
		c.JSON(statusForInvoiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoiceByIDHandler handles GET /api/invoices/:id.
func (h *InvoiceHandler) GetInvoiceByIDHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	id := c.Param("id")
	inv, err := h.Service.GetInvoice(c.Request.Context(), owner, id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch invoice", zap.String("id", id), zap.Error(err))
		c.JSON(statusForInvoiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// UpdateInvoiceHandler handles PUT /api/invoices/:id.
func (h *InvoiceHandler) UpdateInvoiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	var in invoice.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid update invoice request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	inv, err := h.Service.UpdateInvoice(c.Request.Context(), owner, id, in)
	if err != nil {
		logger.Error("Failed to update invoice", zap.String("id", id), zap.Error(err))
		c.JSON(statusForInvoiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// DeleteInvoiceHandler handles DELETE /api/invoices/:id.
func (h *InvoiceHandler) DeleteInvoiceHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	id := c.Param("id")
	confirmation, err := h.Service.DeleteInvoice(c.Request.Context(), owner, id)
	if err != nil {
		utils.GetLogger().Error("Failed to delete invoice", zap.String("id", id), zap.Error(err))
		c.JSON(statusForInvoiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// GetInvoiceStatsHandler handles GET /api/invoices/stats.
func (h *InvoiceHandler) GetInvoiceStatsHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	stats, err := h.Service.Statistics(c.Request.Context(), owner)
	if err != nil {
		utils.GetLogger().Error("Failed to aggregate stats", zap.String("owner", owner), zap.Error(err))
		c.JSON(statusForInvoiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
