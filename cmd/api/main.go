package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/harentsoaR/stayvista-api/internal/config"
	"github.com/harentsoaR/stayvista-api/internal/database"
	"github.com/harentsoaR/stayvista-api/internal/handlers"
	"github.com/harentsoaR/stayvista-api/internal/logging"
	"github.com/harentsoaR/stayvista-api/internal/routes"
	"github.com/harentsoaR/stayvista-api/internal/services"
	"github.com/harentsoaR/stayvista-api/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	logger, logCloser := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		Production: cfg.IsProduction(),
	})
	defer logCloser.Close()
	mainLog := logger.WithFields(logrus.Fields{"path": "api/main"})

	if cfg.StripeSecretKey == "" {
		mainLog.Warn("STRIPE_SECRET_KEY is NOT SET, payment intents will fail.")
	}

	// --- Database Connection ---
	client, db, err := database.Connect(context.Background(), cfg.MongoURI, cfg.MongoDatabase, logger)
	if err != nil {
		mainLog.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		mainLog.Errorf("Failed to ensure indexes: %v", err)
	}
	cancel()

	// --- Initialize Services & Handlers ---
	h := handlers.NewHandler(
		services.NewUserService(db),
		services.NewRoomService(db),
		services.NewBookingService(db),
		services.NewStripePaymentService(cfg.StripeSecretKey, logger),
		utils.NewTokenManager(cfg.AccessTokenSecret, utils.TokenTTL),
		logger,
		cfg.IsProduction(),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := routes.New(h, routes.Options{AllowOrigins: cfg.CORSOrigins})
	if err != nil {
		mainLog.Fatalf("Failed to build router: %v", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		mainLog.Infof("StayVista is running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			mainLog.Fatalf("Server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	mainLog.Infof("Received %s, shutting down", sig)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		mainLog.Errorf("Graceful shutdown failed: %v", err)
	}
	mainLog.Info("Server stopped")
}
