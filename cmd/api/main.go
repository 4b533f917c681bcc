package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/adapter/client"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/adapter/http/router"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/dataset"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/domain/service"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/infrastructure/config"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/infrastructure/logger"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local development convenience; missing .env is fine
	_ = godotenv.Load()

	// Load configuration; a missing credential aborts startup
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Build the sentiment classifier
	classifier, err := buildClassifier(&cfg.Classifier, log)
	if err != nil {
		return fmt.Errorf("failed to build classifier: %w", err)
	}
	log.Info("Classifier configured",
		zap.String("provider", cfg.Classifier.Provider),
		zap.String("mode", cfg.Classifier.Mode),
		zap.String("model", cfg.Classifier.Model),
	)

	classifyUC := usecase.NewClassifyUsecase(classifier, cfg.Classifier.Timeout())

	// Setup router
	r := router.Setup(classifyUC, &cfg.Classifier, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}

// buildClassifier wires the configured provider, loading few-shot examples
// from the dataset CSV when that mode is selected.
func buildClassifier(cfg *config.ClassifierConfig, log *zap.Logger) (service.Classifier, error) {
	var shots []dataset.Record
	if cfg.Mode == config.ModeFewShot {
		records, err := dataset.ReadCSV(cfg.ExamplesCSV)
		if err != nil {
			return nil, fmt.Errorf("few-shot mode needs a labeled examples CSV: %w", err)
		}
		shots = dataset.CleanRecords(records)
		if len(shots) == 0 {
			return nil, fmt.Errorf("no usable few-shot examples in %s", cfg.ExamplesCSV)
		}
		log.Info("Loaded few-shot examples", zap.Int("count", len(shots)))
	}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return client.NewOpenAIClassifier(cfg, shots), nil
	case config.ProviderAnthropic:
		return client.NewAnthropicClassifier(cfg, shots), nil
	default:
		return nil, fmt.Errorf("unknown classifier provider %q", cfg.Provider)
	}
}
