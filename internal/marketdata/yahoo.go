package marketdata

import (
	"context"
	"sort"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Akash89-eng/StockMarketAnalysis/internal/models"
	"github.com/Akash89-eng/StockMarketAnalysis/internal/utils"
)

// YahooClient fetches daily close history from Yahoo Finance. It is the live
// alternative to the synthetic generator: any failure or timeout is reported
// as a DataFetchError and the caller falls back to synthetic generation
// without retrying.
type YahooClient struct {
	timeout time.Duration
	logger  *logrus.Logger
}

// NewYahooClient creates a new Yahoo Finance history client.
func NewYahooClient(timeout time.Duration, logger *logrus.Logger) *YahooClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &YahooClient{
		timeout: timeout,
		logger:  logger,
	}
}

// FetchDailyHistory retrieves business-day close prices for every symbol over
// [start, end], aligned to the dates all symbols have in common. The
// underlying chart API has no context support, so the fetch runs under a
// deadline and is abandoned when it expires.
func (c *YahooClient) FetchDailyHistory(ctx context.Context, symbols []string, start, end time.Time) ([]models.PriceSeries, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	type result struct {
		series []models.PriceSeries
		err    error
	}
	ch := make(chan result, 1)
	go func() {
		series, err := c.fetchAll(symbols, start, end)
		ch <- result{series: series, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, utils.NewDataFetchError("market data fetch timed out", ctx.Err())
	case r := <-ch:
		return r.series, r.err
	}
}

func (c *YahooClient) fetchAll(symbols []string, start, end time.Time) ([]models.PriceSeries, error) {
	bySymbol := make([]map[time.Time]float64, len(symbols))
	for i, symbol := range symbols {
		closes, err := c.fetchSymbol(symbol, start, end)
		if err != nil {
			return nil, err
		}
		if len(closes) == 0 {
			return nil, utils.NewDataFetchError("no history returned for "+symbol, nil)
		}
		bySymbol[i] = closes
	}

	dates := commonDates(bySymbol)
	if len(dates) == 0 {
		return nil, utils.NewDataFetchError("fetched histories share no common dates", nil)
	}

	series := make([]models.PriceSeries, len(symbols))
	for i, symbol := range symbols {
		points := make([]models.PricePoint, len(dates))
		for t, d := range dates {
			points[t] = models.PricePoint{Date: d, Price: bySymbol[i][d]}
		}
		series[i] = models.PriceSeries{Symbol: symbol, Points: points}
	}
	return series, nil
}

func (c *YahooClient) fetchSymbol(symbol string, start, end time.Time) (map[time.Time]float64, error) {
	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)
	closes := make(map[time.Time]float64)
	for iter.Next() {
		bar := iter.Bar()
		if bar.Close.Cmp(decimal.Zero) <= 0 {
			continue
		}
		day := time.Unix(int64(bar.Timestamp), 0).UTC()
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		price, _ := bar.Close.Float64()
		closes[day] = price
	}
	if err := iter.Err(); err != nil {
		c.logger.WithFields(logrus.Fields{"symbol": symbol}).Warnf("History fetch failed: %v", err)
		return nil, utils.NewDataFetchError("failed to fetch history for "+symbol, err)
	}
	return closes, nil
}

// commonDates returns the sorted dates present in every per-symbol map.
func commonDates(bySymbol []map[time.Time]float64) []time.Time {
	if len(bySymbol) == 0 {
		return nil
	}
	var dates []time.Time
	for d := range bySymbol[0] {
		shared := true
		for _, m := range bySymbol[1:] {
			if _, ok := m[d]; !ok {
				shared = false
				break
			}
		}
		if shared {
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
