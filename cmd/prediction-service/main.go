package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-predictor/internal/predictor/config"
	delivery "stock-predictor/internal/predictor/delivery/http"
	_ "stock-predictor/internal/predictor/docs"
	"stock-predictor/internal/predictor/repository"
	"stock-predictor/internal/predictor/service"
	"stock-predictor/pkg/logger"
	"stock-predictor/pkg/ohlcv"
	"stock-predictor/pkg/validator"

	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the prediction service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Prediction Service",
		logger.Field("name", cfg.App.Name),
		logger.StringField("provider", cfg.Provider.Name))

	// Initialize repositories
	predictionRepo, err := newPredictionRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize prediction provider", logger.ErrorField(err))
	}
	sessionRepo := repository.NewSessionRepository(cfg.Prediction.SessionTTL, cfg.Prediction.CleanupInterval)

	// Initialize services
	validate := validator.New()
	predictionSvc := service.NewPredictionService(cfg, predictionRepo, sessionRepo, validate, appLogger)
	seriesSvc := service.NewSeriesService(cfg, ohlcv.NewGenerator(ohlcv.NewSource(cfg.Series.Seed)), validate, appLogger)

	// Start dashboard refresher
	if err := seriesSvc.Start(ctx); err != nil {
		appLogger.Fatal("Failed to start dashboard refresher", logger.ErrorField(err))
	}

	// Initialize Echo server
	e := delivery.NewRouter(
		delivery.NewPredictionHandler(predictionSvc, appLogger),
		delivery.NewSeriesHandler(seriesSvc, appLogger),
		validate,
		appLogger,
	)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownTimeout, err := time.ParseDuration(cfg.API.ShutdownTimeout)
	if err != nil {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func newPredictionRepository(cfg *config.Config, log *logger.Logger) (repository.PredictionRepository, error) {
	switch cfg.Provider.Name {
	case "simulated":
		return repository.NewSimulatedPredictionRepository(cfg.Simulator, log, ohlcv.NewSource(cfg.Simulator.Seed)), nil
	case "remote":
		if cfg.Provider.Remote.BaseURL == "" {
			return nil, errors.New("provider.remote.base_url is required for the remote provider")
		}
		return repository.NewRemotePredictionRepository(cfg.Provider.Remote, log), nil
	default:
		return nil, fmt.Errorf("unknown prediction provider %q", cfg.Provider.Name)
	}
}

// @title Stock Predictor API
// @version 1.0
// @description Synthetic OHLCV series and simulated next-day price predictions.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "prediction-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-predictor.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing prediction-service CLI: %s\n", err)
		os.Exit(1)
	}
}
