package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Akash89-eng/StockMarketAnalysis/internal/charts"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/config"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/logging"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/models"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/services"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/utils"
)

// AnalysisHandler serves the stock analysis endpoints.
type AnalysisHandler struct {
	cfg      *config.Config
	service  *services.AnalysisService
	renderer *charts.Renderer
	logger   *logging.StandardLogger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(cfg *config.Config, service *services.AnalysisService, renderer *charts.Renderer, logger *logging.StandardLogger) *AnalysisHandler {
	return &AnalysisHandler{
		cfg:      cfg,
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// AnalyzeStocks handles POST /api/analyze.
func (h *AnalysisHandler) AnalyzeStocks(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "invalid request body",
			Message: "Request body must be JSON with optional start_date and end_date",
		})
		return
	}

	if req.StartDate == "" {
		req.StartDate = h.cfg.Analysis.DefaultStartDate
	}
	if req.EndDate == "" {
		req.EndDate = h.cfg.Analysis.DefaultEndDate
	}

	start, err := time.Parse(config.DateFormat, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "invalid start_date",
			Message: "start_date must be formatted as YYYY-MM-DD",
		})
		return
	}
	end, err := time.Parse(config.DateFormat, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   "invalid end_date",
			Message: "end_date must be formatted as YYYY-MM-DD",
		})
		return
	}

	requestID := uuid.NewString()
	logger := h.logger.WithRequestID(requestID)
	logger.Info("Received analysis request", "start_date", req.StartDate, "end_date", req.EndDate)

	result, err := h.service.Analyze(c.Request.Context(), start, end, time.Now().UnixNano())
	if err != nil {
		h.respondAnalysisError(c, requestID, err)
		return
	}

	data := &models.AnalysisData{
		StockPrices:      h.priceTail(result.Prices),
		DailyReturns:     h.returnTail(result.Returns),
		CovarianceMatrix: result.Covariance.ToSymbolMap(),
		Eigenvalues:      result.Eigen.Eigenvalues,
		Eigenvectors:     result.Eigen.Vectors,
		Analysis:         result.Summary,
		DataSource:       result.Source,
	}

	// Chart rendering is presentation only: a render failure is logged and
	// the analysis still succeeds.
	if chart, err := h.renderer.TrendChart(h.cfg.Symbols(), result.Eigen); err != nil {
		logger.Warn("Trend chart rendering failed", "error", err.Error())
	} else {
		data.TrendChart = chart
	}
	if chart, err := h.renderer.ReturnsChart(result.Returns); err != nil {
		logger.Warn("Returns chart rendering failed", "error", err.Error())
	} else {
		data.ReturnsChart = chart
	}

	logger.Info("Analysis completed",
		"main_trend_stock", result.Summary.MainTrendStock,
		"variance_explained", result.Summary.VarianceExplained,
		"number_of_days", result.Summary.NumberOfDays,
		"data_source", string(result.Source),
	)

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Success: true,
		Data:    data,
		Message: "Stock analysis completed successfully",
	})
}

// GetStocks handles GET /api/stocks.
func (h *AnalysisHandler) GetStocks(c *gin.Context) {
	symbols := h.cfg.Symbols()
	c.JSON(http.StatusOK, models.StocksResponse{
		Stocks: symbols,
		Count:  len(symbols),
	})
}

// respondAnalysisError maps pipeline errors onto the HTTP error contract.
// User-correctable input problems are 400s with the real message; internal
// failures are 500s with a generic message so no internal detail leaks.
func (h *AnalysisHandler) respondAnalysisError(c *gin.Context, requestID string, err error) {
	logger := h.logger.WithRequestID(requestID)

	var invalidRange *utils.InvalidRangeError
	var emptyRange *utils.EmptyRangeError
	switch {
	case errors.As(err, &invalidRange):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   invalidRange.Message,
			Message: "The start date must not be after the end date",
		})
	case errors.As(err, &emptyRange):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   emptyRange.Message,
			Message: "The requested range contains no business days; try a wider range",
		})
	default:
		logger.Error("Analysis failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   "internal error",
			Message: "Error performing stock analysis",
		})
	}
}

// priceTail builds the symbol-keyed tail window of the price table.
func (h *AnalysisHandler) priceTail(prices []models.PriceSeries) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(prices))
	for _, ps := range prices {
		entries := make(map[string]float64)
		for _, p := range tailPricePoints(ps.Points, h.cfg.Analysis.TailWindow) {
			entries[p.Date.Format(models.DateFormat)] = p.Price
		}
		out[ps.Symbol] = entries
	}
	return out
}

// returnTail builds the symbol-keyed tail window of the returns table.
func (h *AnalysisHandler) returnTail(returns []models.ReturnSeries) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(returns))
	for _, rs := range returns {
		entries := make(map[string]float64)
		for _, p := range tailReturnPoints(rs.Points, h.cfg.Analysis.TailWindow) {
			entries[p.Date.Format(models.DateFormat)] = p.Return
		}
		out[rs.Symbol] = entries
	}
	return out
}

func tailPricePoints(points []models.PricePoint, n int) []models.PricePoint {
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

func tailReturnPoints(points []models.ReturnPoint, n int) []models.ReturnPoint {
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}
