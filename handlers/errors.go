package handlers

import (
	"errors"
	"net/http"

	"invoicely/services/invoice"

	"github.com/gin-gonic/gin"
)

// ownerID extracts the authenticated user ID set by the auth middleware.
func ownerID(c *gin.Context) (string, bool) {
	val, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}

// statusForInvoiceError maps invoice error kinds to HTTP statuses.
func statusForInvoiceError(err error) int {
	var (
		validation   invoice.ValidationError
		invalidID    invoice.InvalidIDError
		notFound     invoice.NotFoundError
		unauthorized invoice.UnauthorizedError
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &invalidID):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unauthorized):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
