package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Akash89-eng/StockMarketAnalysis/internal/handlers"
)

// Version is the reported service version.
const Version = "1.0.0"

type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

type HomeResponse struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
	Timestamp time.Time         `json:"timestamp"`
}

func SetupRoutes(router *gin.Engine, analysis *handlers.AnalysisHandler) {
	// Service banner
	router.GET("/", home)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)
		api.POST("/analyze", analysis.AnalyzeStocks)
		api.GET("/stocks", analysis.GetStocks)
	}
}

func home(c *gin.Context) {
	c.JSON(http.StatusOK, HomeResponse{
		Message: "Stock Analysis Backend is Running",
		Status:  "active",
		Endpoints: map[string]string{
			"health":  "/api/health",
			"analyze": "/api/analyze (POST)",
			"stocks":  "/api/stocks",
		},
		Timestamp: time.Now(),
	})
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Message:   "Stock Analysis API is running smoothly",
		Timestamp: time.Now(),
		Version:   Version,
	})
}
