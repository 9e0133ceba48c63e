package main

import (
	"context"
	"go-caduae-backend/config"
	_ "go-caduae-backend/docs" // Important for Swagger
	v1 "go-caduae-backend/internal/delivery/http/v1"
	"go-caduae-backend/internal/usecase"
	"go-caduae-backend/pkg/email"
	"go-caduae-backend/pkg/logger"
	"go-caduae-backend/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
)

// @title           caduae Forms Backend API
// @version         1.0
// @description     Relays website form submissions (contact, support, quote) by email.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting caduae forms backend", "port", cfg.Port)

	// 3. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - form submissions will fail to relay")
	}

	// 4. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	submissionUC := usecase.NewSubmissionUsecase(emailService, validate, time.Duration(cfg.SMTPTimeoutSeconds)*time.Second)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC: submissionUC,
		Config:       cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
