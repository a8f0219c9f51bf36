package models

// AnalyzeRequest is the body of POST /api/analyze. Both dates are optional
// and default to the configured historical window.
type AnalyzeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// AnalysisData is the payload of a successful analysis response.
type AnalysisData struct {
	StockPrices      map[string]map[string]float64 `json:"stock_prices"`
	DailyReturns     map[string]map[string]float64 `json:"daily_returns"`
	CovarianceMatrix map[string]map[string]float64 `json:"covariance_matrix"`
	Eigenvalues      []float64                     `json:"eigenvalues"`
	Eigenvectors     [][]float64                   `json:"eigenvectors"`
	Analysis         AnalysisSummary               `json:"analysis"`
	TrendChart       string                        `json:"trend_chart,omitempty"`
	ReturnsChart     string                        `json:"returns_chart,omitempty"`
	DataSource       SeriesSource                  `json:"data_source"`
}

// AnalyzeResponse is the envelope of POST /api/analyze.
type AnalyzeResponse struct {
	Success bool          `json:"success"`
	Data    *AnalysisData `json:"data"`
	Message string        `json:"message"`
}

// ErrorResponse is the envelope returned for any failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StocksResponse is the payload of GET /api/stocks.
type StocksResponse struct {
	Stocks []string `json:"stocks"`
	Count  int      `json:"count"`
}
