package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Akash89-eng/StockMarketAnalysis/internal/api"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/charts"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/config"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/handlers"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/logging"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/marketdata"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/middleware"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/services"
)

const serviceName = "stock-analysis"

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	stdLogger := logging.NewStandardLogger(cfg.LogLevel)

	serviceLogger := logrus.New()
	serviceLogger.SetLevel(logging.ParseLogrusLevel(cfg.LogLevel))
	serviceLogger.SetFormatter(&logrus.JSONFormatter{})

	// Live market data is optional; without it every request is synthetic.
	var fetcher services.HistoryFetcher
	if cfg.MarketData.Enabled {
		fetcher = marketdata.NewYahooClient(cfg.MarketDataTimeout(), serviceLogger)
	}

	analysisService := services.NewAnalysisService(cfg, fetcher, serviceLogger)
	analysisHandler := handlers.NewAnalysisHandler(cfg, analysisService, charts.NewRenderer(), stdLogger)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin router
	router := gin.New()
	router.Use(middleware.Recovery(stdLogger))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	api.SetupRoutes(router, analysisHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		stdLogger.LogStartup(serviceName, api.Version, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	stdLogger.LogShutdown(serviceName, "signal received")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
