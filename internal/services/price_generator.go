package services

import (
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Akash89-eng/StockMarketAnalysis/internal/config"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/models"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/utils"
)

// PriceGenerator produces synthetic business-day price series from a
// multiplicative random walk with a shared cyclical drift and per-instrument
// Gaussian shocks. Prices are clamped to a floor fraction of the base price
// so the walk can never collapse to zero or negative values, which would
// break the percentage-return math downstream.
type PriceGenerator struct {
	cfg    config.GeneratorConfig
	logger *logrus.Logger
}

// NewPriceGenerator creates a new synthetic price generator.
func NewPriceGenerator(cfg config.GeneratorConfig, logger *logrus.Logger) *PriceGenerator {
	return &PriceGenerator{
		cfg:    cfg,
		logger: logger,
	}
}

// BusinessDays returns the Monday–Friday dates in [start, end], normalized
// to midnight UTC.
func BusinessDays(start, end time.Time) []time.Time {
	start = normalizeDate(start)
	end = normalizeDate(end)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		default:
			days = append(days, d)
		}
	}
	return days
}

// Generate produces one PriceSeries per instrument over the business days of
// [start, end]. Each instrument draws from its own random stream derived
// from seed, so generation is reproducible and instruments are independent.
// A start date after the end date is rejected with an InvalidRangeError; a
// range without business days yields one empty series per instrument.
func (g *PriceGenerator) Generate(start, end time.Time, instruments []config.Instrument, seed int64) ([]models.PriceSeries, error) {
	if normalizeDate(start).After(normalizeDate(end)) {
		return nil, utils.NewInvalidRangeErrorf("start date %s is after end date %s",
			start.Format(models.DateFormat), end.Format(models.DateFormat))
	}

	days := BusinessDays(start, end)

	g.logger.WithFields(logrus.Fields{
		"start":         start.Format(models.DateFormat),
		"end":           end.Format(models.DateFormat),
		"business_days": len(days),
		"instruments":   len(instruments),
	}).Debug("Generating synthetic price series")

	series := make([]models.PriceSeries, len(instruments))
	for i, inst := range instruments {
		rng := rand.New(rand.NewSource(seed + int64(i)))
		series[i] = g.GenerateOne(days, inst, rng)
	}
	return series, nil
}

// GenerateOne produces the price series of a single instrument over the
// given business days, drawing every random step from rng. Two runs with
// identically seeded sources produce bit-identical series.
func (g *PriceGenerator) GenerateOne(days []time.Time, inst config.Instrument, rng *rand.Rand) models.PriceSeries {
	series := models.PriceSeries{
		Symbol: inst.Symbol,
		Points: make([]models.PricePoint, 0, len(days)),
	}
	if len(days) == 0 {
		return series
	}

	floor := g.cfg.FloorFraction * inst.BasePrice

	// Initial market dispersion around the nominal base price.
	dispersion := (rng.Float64()*2 - 1) * g.cfg.StartDispersion
	price := inst.BasePrice * (1 + dispersion)
	if price < floor {
		price = floor
	}
	series.Points = append(series.Points, models.PricePoint{Date: days[0], Price: price})

	for i := 1; i < len(days); i++ {
		trend := math.Sin(float64(i)*g.cfg.TrendFrequency) * g.cfg.TrendAmplitude
		news := rng.NormFloat64() * inst.Volatility
		sentiment := rng.NormFloat64() * inst.SentimentVolatility

		price *= 1 + trend + news + sentiment
		if price < floor {
			price = floor
		}
		series.Points = append(series.Points, models.PricePoint{Date: days[i], Price: price})
	}
	return series
}

// normalizeDate truncates a timestamp to its calendar day at midnight UTC.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
