package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler so route registration takes a
// single dependency.
type HandlerBundle struct {
	// Auth endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	SignOutHandler          gin.HandlerFunc

	// Invoice endpoints.
	CreateInvoiceHandler   gin.HandlerFunc
	GetInvoicesHandler     gin.HandlerFunc
	GetInvoiceByIDHandler  gin.HandlerFunc
	UpdateInvoiceHandler   gin.HandlerFunc
	DeleteInvoiceHandler   gin.HandlerFunc
	GetInvoiceStatsHandler gin.HandlerFunc

	// AI endpoints.
	ParseInvoiceTextHandler gin.HandlerFunc
	GenerateReminderHandler gin.HandlerFunc
	DashboardSummaryHandler gin.HandlerFunc
}
