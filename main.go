// File: servizo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servizo/api"
	"servizo/config"
	"servizo/handlers"
	"servizo/middleware"
	"servizo/routes"
	"servizo/services/account"
	"servizo/services/bookings"
	"servizo/services/catalog"
	"servizo/utils"
	"servizo/views"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionClient()
	sessions := utils.GetSessionClient()

	backend := api.New(config.AppConfig.BackendURL, config.BackendTimeout())

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.SessionMiddleware(sessions))
	router.SetHTMLTemplate(views.Load())

	// services.
	accountService := &account.DefaultAccountService{
		API:      backend,
		Sessions: sessions,
	}
	catalogService := &catalog.DefaultCatalogService{
		API: backend,
	}
	bookingService := &bookings.DefaultBookingService{
		API: backend,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Account:  accountService,
		Catalog:  catalogService,
		Bookings: bookingService,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
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
