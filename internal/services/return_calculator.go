package services

import (
	"github.com/Akash89-eng/StockMarketAnalysis/internal/models"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/utils"
)

// ReturnCalculator converts price series into fractional day-over-day
// returns.
type ReturnCalculator struct{}

// NewReturnCalculator creates a new return calculator.
func NewReturnCalculator() *ReturnCalculator {
	return &ReturnCalculator{}
}

// Calculate derives the return series of one price series. The first
// observation has no prior price and is dropped; fewer than two price points
// yield an empty series.
func (rc *ReturnCalculator) Calculate(prices models.PriceSeries) models.ReturnSeries {
	returns := models.ReturnSeries{Symbol: prices.Symbol}
	if len(prices.Points) < 2 {
		return returns
	}

	returns.Points = make([]models.ReturnPoint, 0, len(prices.Points)-1)
	for i := 1; i < len(prices.Points); i++ {
		returns.Points = append(returns.Points, models.ReturnPoint{
			Date:   prices.Points[i].Date,
			Return: prices.Points[i].Price/prices.Points[i-1].Price - 1,
		})
	}
	return returns
}

// CalculateAll derives return series for every price series. When all
// resulting series are empty the pipeline cannot proceed to a covariance
// computation, so it fails fast with an EmptyRangeError.
func (rc *ReturnCalculator) CalculateAll(prices []models.PriceSeries) ([]models.ReturnSeries, error) {
	returns := make([]models.ReturnSeries, len(prices))
	empty := true
	for i, ps := range prices {
		returns[i] = rc.Calculate(ps)
		if returns[i].Len() > 0 {
			empty = false
		}
	}
	if empty {
		return nil, utils.NewEmptyRangeError("no daily returns could be computed for the requested range; try widening it")
	}
	return returns, nil
}
