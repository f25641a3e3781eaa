// File: invoicely/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invoicely/config"
	"invoicely/database"
	invoiceRepoPkg "invoicely/database/repository/invoice"
	userRepoPkg "invoicely/database/repository/user"
	"invoicely/handlers"
	"invoicely/middleware"
	"invoicely/routes"
	invoiceSvc "invoicely/services/invoice"
	ai "invoicely/services/intelligence"
	"invoicely/services/user"
	"invoicely/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	handlers.SetUserService(userService)

	invoiceService := &invoiceSvc.DefaultInvoiceService{
		Repo:  invoiceRepo,
		Users: userRepo,
	}
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)

	gemini := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	aiService := ai.NewDefaultAIService(gemini, invoiceService)
	aiHandler := handlers.NewAIHandler(aiService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		RegisterUserHandler:     handlers.RegisterUserHandler,
		AuthenticateUserHandler: handlers.AuthenticateUserHandler,
		GetProfileHandler:       handlers.GetProfileHandler,
		UpdateProfileHandler:    handlers.UpdateProfileHandler,
		SignOutHandler:          handlers.SignOutHandler,

		// Invoice endpoints.
		CreateInvoiceHandler:   invoiceHandler.CreateInvoiceHandler,
		GetInvoicesHandler:     invoiceHandler.GetInvoicesHandler,
		GetInvoiceByIDHandler:  invoiceHandler.GetInvoiceByIDHandler,
		UpdateInvoiceHandler:   invoiceHandler.UpdateInvoiceHandler,
		DeleteInvoiceHandler:   invoiceHandler.DeleteInvoiceHandler,
		GetInvoiceStatsHandler: invoiceHandler.GetInvoiceStatsHandler,

		// AI endpoints.
		ParseInvoiceTextHandler: aiHandler.ParseInvoiceTextHandler,
		GenerateReminderHandler: aiHandler.GenerateReminderHandler,
		DashboardSummaryHandler: aiHandler.DashboardSummaryHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
