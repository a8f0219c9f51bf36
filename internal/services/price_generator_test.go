package services

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash89-eng/StockMarketAnalysis/internal/config"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/utils"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testGeneratorConfig() config.GeneratorConfig {
	return config.GeneratorConfig{
		FloorFraction:   0.5,
		StartDispersion: 0.1,
		TrendAmplitude:  0.001,
		TrendFrequency:  0.1,
	}
}

func testInstruments() []config.Instrument {
	return []config.Instrument{
		{Symbol: "RELIANCE.NS", BasePrice: 2500, Volatility: 0.01, SentimentVolatility: 0.005},
		{Symbol: "TCS.NS", BasePrice: 3500, Volatility: 0.01, SentimentVolatility: 0.005},
		{Symbol: "INFY.NS", BasePrice: 1800, Volatility: 0.01, SentimentVolatility: 0.005},
		{Symbol: "HDFCBANK.NS", BasePrice: 1600, Volatility: 0.01, SentimentVolatility: 0.005},
		{Symbol: "ITC.NS", BasePrice: 400, Volatility: 0.01, SentimentVolatility: 0.005},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDays(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "range spanning one weekend",
			start:    date(2024, time.September, 1),
			end:      date(2024, time.September, 10),
			expected: 7,
		},
		{
			name:     "single saturday",
			start:    date(2024, time.September, 7),
			end:      date(2024, time.September, 7),
			expected: 0,
		},
		{
			name:     "full weekend only",
			start:    date(2024, time.September, 7),
			end:      date(2024, time.September, 8),
			expected: 0,
		},
		{
			name:     "single weekday",
			start:    date(2024, time.September, 4),
			end:      date(2024, time.September, 4),
			expected: 1,
		},
		{
			name:     "full working week",
			start:    date(2024, time.September, 2),
			end:      date(2024, time.September, 6),
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := BusinessDays(tt.start, tt.end)
			assert.Len(t, days, tt.expected)
			for _, d := range days {
				assert.NotEqual(t, time.Saturday, d.Weekday())
				assert.NotEqual(t, time.Sunday, d.Weekday())
			}
		})
	}
}

func TestPriceGenerator_Generate(t *testing.T) {
	gen := NewPriceGenerator(testGeneratorConfig(), testLogger())
	instruments := testInstruments()

	series, err := gen.Generate(date(2024, time.September, 1), date(2024, time.September, 10), instruments, 42)
	require.NoError(t, err)
	require.Len(t, series, len(instruments))

	for i, ps := range series {
		assert.Equal(t, instruments[i].Symbol, ps.Symbol)
		assert.Equal(t, 7, ps.Len())

		floor := 0.5 * instruments[i].BasePrice
		for _, p := range ps.Points {
			assert.Greater(t, p.Price, 0.0)
			assert.GreaterOrEqual(t, p.Price, floor)
		}

		// Starting price stays within the configured dispersion band.
		first := ps.Points[0].Price
		assert.GreaterOrEqual(t, first, 0.9*instruments[i].BasePrice)
		assert.LessOrEqual(t, first, 1.1*instruments[i].BasePrice)
	}
}

func TestPriceGenerator_Generate_InvalidRange(t *testing.T) {
	gen := NewPriceGenerator(testGeneratorConfig(), testLogger())

	_, err := gen.Generate(date(2024, time.September, 10), date(2024, time.September, 1), testInstruments(), 1)
	require.Error(t, err)

	var invalidRange *utils.InvalidRangeError
	assert.ErrorAs(t, err, &invalidRange)
}

func TestPriceGenerator_Generate_EmptyRange(t *testing.T) {
	gen := NewPriceGenerator(testGeneratorConfig(), testLogger())

	// Saturday to Sunday contains no business days.
	series, err := gen.Generate(date(2024, time.September, 7), date(2024, time.September, 8), testInstruments(), 1)
	require.NoError(t, err)
	require.Len(t, series, 5)
	for _, ps := range series {
		assert.Equal(t, 0, ps.Len())
	}
}

func TestPriceGenerator_Determinism(t *testing.T) {
	gen := NewPriceGenerator(testGeneratorConfig(), testLogger())
	instruments := testInstruments()
	start, end := date(2024, time.January, 1), date(2024, time.March, 29)

	first, err := gen.Generate(start, end, instruments, 12345)
	require.NoError(t, err)
	second, err := gen.Generate(start, end, instruments, 12345)
	require.NoError(t, err)

	// Bit-identical output under a fixed seed.
	assert.Equal(t, first, second)

	third, err := gen.Generate(start, end, instruments, 54321)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestPriceGenerator_GenerateOne_IdenticalStreams(t *testing.T) {
	gen := NewPriceGenerator(testGeneratorConfig(), testLogger())
	days := BusinessDays(date(2024, time.September, 2), date(2024, time.September, 13))

	inst := config.Instrument{Symbol: "A", BasePrice: 1000, Volatility: 0.01, SentimentVolatility: 0.005}
	twin := config.Instrument{Symbol: "B", BasePrice: 1000, Volatility: 0.01, SentimentVolatility: 0.005}

	a := gen.GenerateOne(days, inst, rand.New(rand.NewSource(7)))
	b := gen.GenerateOne(days, twin, rand.New(rand.NewSource(7)))

	require.Equal(t, a.Len(), b.Len())
	for i := range a.Points {
		assert.Equal(t, a.Points[i].Price, b.Points[i].Price)
	}
}

func TestPriceGenerator_FloorClamp(t *testing.T) {
	cfg := testGeneratorConfig()
	gen := NewPriceGenerator(cfg, testLogger())

	// A volatility this extreme drives the walk into the floor quickly.
	inst := config.Instrument{Symbol: "WILD", BasePrice: 100, Volatility: 5.0}
	days := BusinessDays(date(2024, time.January, 1), date(2024, time.December, 31))
	require.NotEmpty(t, days)

	series := gen.GenerateOne(days, inst, rand.New(rand.NewSource(3)))

	clamped := 0
	for _, p := range series.Points {
		assert.Greater(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Price, cfg.FloorFraction*inst.BasePrice)
		if p.Price == cfg.FloorFraction*inst.BasePrice {
			clamped++
		}
	}
	assert.Greater(t, clamped, 0, "expected the floor clamp to engage at this volatility")
}
