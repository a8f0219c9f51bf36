package models

import "time"

// DateFormat is the wire format for observation dates.
const DateFormat = "2006-01-02"

// SeriesSource records which path produced the price series used by an
// analysis, so callers can tell a live-data run from a synthetic one.
type SeriesSource string

const (
	// SourceSynthetic marks series produced by the stochastic model.
	SourceSynthetic SeriesSource = "synthetic"
	// SourceFetched marks series obtained from the live market data
	// collaborator.
	SourceFetched SeriesSource = "fetched"
)

// PricePoint is a single dated price observation.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// PriceSeries is the ordered business-day price history of one instrument.
type PriceSeries struct {
	Symbol string       `json:"symbol"`
	Points []PricePoint `json:"points"`
}

// Len returns the number of observations in the series.
func (ps PriceSeries) Len() int {
	return len(ps.Points)
}

// Dates returns the observation dates in order.
func (ps PriceSeries) Dates() []time.Time {
	dates := make([]time.Time, len(ps.Points))
	for i, p := range ps.Points {
		dates[i] = p.Date
	}
	return dates
}

// ReturnPoint is a single dated fractional day-over-day return.
type ReturnPoint struct {
	Date   time.Time `json:"date"`
	Return float64   `json:"return"`
}

// ReturnSeries is the ordered return history derived from one PriceSeries.
// Its first date is the second date of the source series.
type ReturnSeries struct {
	Symbol string        `json:"symbol"`
	Points []ReturnPoint `json:"points"`
}

// Len returns the number of return observations.
func (rs ReturnSeries) Len() int {
	return len(rs.Points)
}

// Dates returns the observation dates in order.
func (rs ReturnSeries) Dates() []time.Time {
	dates := make([]time.Time, len(rs.Points))
	for i, p := range rs.Points {
		dates[i] = p.Date
	}
	return dates
}

// Values returns the return values in order.
func (rs ReturnSeries) Values() []float64 {
	values := make([]float64, len(rs.Points))
	for i, p := range rs.Points {
		values[i] = p.Return
	}
	return values
}
