package internal

import (
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// PriceQuote is the current Bitcoin price in Currency.
type PriceQuote struct {
	Currency CurrencyCode
	Rate     decimal.Decimal
}

type DailyClose struct {
	Date  Date
	Price decimal.Decimal
}

// HistoricalSeries holds one close per date, ordered by date.
type HistoricalSeries []DailyClose

// NewHistoricalSeries builds a series from a date-keyed response object.
// Entries are ordered by date regardless of map iteration order.
func NewHistoricalSeries(byDate map[Date]decimal.Decimal) HistoricalSeries {
	out := make(HistoricalSeries, 0, len(byDate))
	for d, p := range byDate {
		out = append(out, DailyClose{Date: d, Price: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out
}

func (s HistoricalSeries) Len() int { return len(s) }

// SortedPrices drops the dates and returns every price in ascending order.
// Equal prices keep their date order; nothing is deduplicated.
func (s HistoricalSeries) SortedPrices() []decimal.Decimal {
	prices := make([]decimal.Decimal, 0, len(s))
	for _, c := range s {
		prices = append(prices, c.Price)
	}
	slices.SortStableFunc(prices, func(a, b decimal.Decimal) int { return a.Cmp(b) })
	return prices
}

type Extremes struct {
	Lowest  decimal.Decimal
	Highest decimal.Decimal
	Count   int
}

// Extremes reports the first and last of SortedPrices. A one-day series
// yields the same price for both.
func (s HistoricalSeries) Extremes() (Extremes, error) {
	prices := s.SortedPrices()
	if len(prices) == 0 {
		return Extremes{}, ErrNoHistoricalData
	}
	return Extremes{
		Lowest:  prices[0],
		Highest: prices[len(prices)-1],
		Count:   len(prices),
	}, nil
}
