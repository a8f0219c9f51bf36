package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash89-eng/StockMarketAnalysis/internal/models"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/utils"
)

func priceSeries(symbol string, start time.Time, prices ...float64) models.PriceSeries {
	ps := models.PriceSeries{Symbol: symbol}
	for i, p := range prices {
		ps.Points = append(ps.Points, models.PricePoint{
			Date:  start.AddDate(0, 0, i),
			Price: p,
		})
	}
	return ps
}

func TestReturnCalculator_Calculate(t *testing.T) {
	rc := NewReturnCalculator()
	start := date(2024, time.September, 2)

	tests := []struct {
		name     string
		prices   []float64
		expected []float64
	}{
		{
			name:     "rising then falling",
			prices:   []float64{100, 110, 99},
			expected: []float64{0.1, -0.1},
		},
		{
			name:     "flat series",
			prices:   []float64{50, 50, 50, 50},
			expected: []float64{0, 0, 0},
		},
		{
			name:     "single point",
			prices:   []float64{100},
			expected: nil,
		},
		{
			name:     "empty series",
			prices:   nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			returns := rc.Calculate(priceSeries("TEST", start, tt.prices...))
			require.Len(t, returns.Points, len(tt.expected))
			for i, expected := range tt.expected {
				assert.InDelta(t, expected, returns.Points[i].Return, 1e-12)
			}
		})
	}
}

func TestReturnCalculator_LengthInvariant(t *testing.T) {
	rc := NewReturnCalculator()
	start := date(2024, time.September, 2)

	for n := 1; n <= 10; n++ {
		prices := make([]float64, n)
		for i := range prices {
			prices[i] = 100 + float64(i)
		}
		returns := rc.Calculate(priceSeries("TEST", start, prices...))
		assert.Equal(t, n-1, returns.Len())
	}
}

func TestReturnCalculator_DropsFirstDate(t *testing.T) {
	rc := NewReturnCalculator()
	start := date(2024, time.September, 2)

	returns := rc.Calculate(priceSeries("TEST", start, 100, 101, 102))
	require.Equal(t, 2, returns.Len())
	assert.Equal(t, start.AddDate(0, 0, 1), returns.Points[0].Date)
}

func TestReturnCalculator_CalculateAll(t *testing.T) {
	rc := NewReturnCalculator()
	start := date(2024, time.September, 2)

	returns, err := rc.CalculateAll([]models.PriceSeries{
		priceSeries("A", start, 100, 110),
		priceSeries("B", start, 200, 190),
	})
	require.NoError(t, err)
	require.Len(t, returns, 2)
	assert.Equal(t, 1, returns[0].Len())
	assert.Equal(t, 1, returns[1].Len())
}

func TestReturnCalculator_CalculateAll_AllEmpty(t *testing.T) {
	rc := NewReturnCalculator()
	start := date(2024, time.September, 2)

	_, err := rc.CalculateAll([]models.PriceSeries{
		priceSeries("A", start, 100),
		priceSeries("B", start),
	})
	require.Error(t, err)

	var emptyRange *utils.EmptyRangeError
	assert.ErrorAs(t, err, &emptyRange)
}
