package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/config"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/database"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/handlers"
	custommiddleware "github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/middleware"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments configure through the environment
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	// Shared infrastructure
	metrics := services.NewPrometheusMetrics()
	circuitBreaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
	tokenService := services.NewTokenService(&cfg.JWT)

	oracle, err := services.NewGeminiOracle(ctx, &cfg.Gemini, circuitBreaker, metrics, logger)
	if err != nil {
		logger.Error("failed to initialize gemini oracle", "error", err)
		os.Exit(1)
	}

	// Domain services
	insightService := services.NewInsightService(
		transactionRepo,
		userRepo,
		oracle,
		metrics,
		logger,
		cfg.Alerts.HistoryDays,
		cfg.Alerts.HistorySampleSize,
	)
	analyticsService := services.NewAnalyticsService(transactionRepo, budgetRepo, insightService, metrics, logger)
	forecastService := services.NewForecastService(transactionRepo, oracle, metrics, logger)
	importService := services.NewImportService(transactionRepo, accountRepo, userRepo, oracle, metrics, logger)

	// Handlers
	alertHandler := handlers.NewAlertHandler(insightService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	forecastHandler := handlers.NewForecastHandler(forecastService)
	importHandler := handlers.NewImportHandler(importService)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, accountRepo)
	budgetHandler := handlers.NewBudgetHandler(budgetRepo)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitPerSec*2))
	e.Use(custommiddleware.PanicRecovery())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	// Public endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Authenticated API
	api := e.Group("/api/v1", custommiddleware.RequireAuth(tokenService))

	api.GET("/alerts", alertHandler.GetSpendingAlerts)
	api.POST("/alerts/:alertId/read", alertHandler.MarkAlertAsRead)

	api.GET("/analytics", analyticsHandler.GetAnalyticsData)
	api.GET("/analytics/trends", analyticsHandler.GetExpenseTrends)
	api.GET("/analytics/categories", analyticsHandler.GetCategoryInsights)
	api.GET("/analytics/budget-variance", analyticsHandler.GetBudgetVariance)
	api.GET("/analytics/savings-rate", analyticsHandler.GetSavingsRate)
	api.GET("/analytics/dashboard", analyticsHandler.GetDashboardOverview)

	api.GET("/forecast", forecastHandler.GetCashFlowForecast)

	api.POST("/import/parse", importHandler.ParseTransaction)
	api.POST("/import", importHandler.ImportTransaction)
	api.POST("/import/batch", importHandler.BatchImport)

	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)

	api.POST("/budgets", budgetHandler.CreateBudget)
	api.GET("/budgets/current", budgetHandler.GetBudget)

	// Seeding endpoint for local development only
	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(userRepo, accountRepo, budgetRepo, transactionRepo)
		e.POST("/api/v1/dev/seed", devHandler.SeedSampleData)
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	logger.Info("server stopped")
}
