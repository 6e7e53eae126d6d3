package coindesk

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"bpi-report/internal"
)

type keyNotFoundError struct {
	key string
}

func (e *keyNotFoundError) Error() string { return fmt.Sprintf("key %q not found", e.key) }

func objectField(obj map[string]json.RawMessage, key string) (json.RawMessage, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, &keyNotFoundError{key: key}
	}
	return raw, nil
}

var errNullValue = errors.New("null value")

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// ParseCurrentPrice reads bpi.<CODE>.rate_float from a currentprice body.
func ParseCurrentPrice(body []byte, code internal.CurrencyCode) (internal.PriceQuote, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return internal.PriceQuote{}, &internal.MalformedCurrentPriceError{Err: err}
	}

	rawBPI, err := objectField(root, "bpi")
	if err != nil {
		return internal.PriceQuote{}, &internal.MalformedCurrentPriceError{Err: err}
	}
	var bpi map[string]json.RawMessage
	if err := json.Unmarshal(rawBPI, &bpi); err != nil {
		return internal.PriceQuote{}, &internal.MalformedCurrentPriceError{Err: err}
	}

	upper := code.Upper()
	rawCCY, ok := bpi[upper.String()]
	if !ok {
		return internal.PriceQuote{}, fmt.Errorf("bpi has no %s: %w", upper, internal.ErrUnsupportedCurrency)
	}
	var ccy map[string]json.RawMessage
	if err := json.Unmarshal(rawCCY, &ccy); err != nil {
		return internal.PriceQuote{}, &internal.MalformedCurrentPriceError{Err: err}
	}
	if len(ccy) == 0 {
		return internal.PriceQuote{}, fmt.Errorf("bpi %s is empty: %w", upper, internal.ErrUnsupportedCurrency)
	}

	rawRate, err := objectField(ccy, "rate_float")
	if err != nil {
		return internal.PriceQuote{}, &internal.MalformedCurrentPriceError{Err: err}
	}
	if isNull(rawRate) {
		return internal.PriceQuote{}, &internal.MalformedCurrentPriceError{Err: fmt.Errorf("rate_float: %w", errNullValue)}
	}
	var rate decimal.Decimal
	if err := json.Unmarshal(rawRate, &rate); err != nil {
		return internal.PriceQuote{}, &internal.MalformedCurrentPriceError{Err: err}
	}

	return internal.PriceQuote{Currency: upper, Rate: rate}, nil
}

// ParseHistoricalClose reads the date -> close object under bpi. An empty
// bpi object is an empty series, not an error; a missing one is malformed.
func ParseHistoricalClose(body []byte) (internal.HistoricalSeries, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, &internal.MalformedHistoricalError{Err: err}
	}

	rawBPI, err := objectField(root, "bpi")
	if err != nil {
		return nil, &internal.MalformedHistoricalError{Err: err}
	}
	var bpi map[internal.Date]json.RawMessage
	if err := json.Unmarshal(rawBPI, &bpi); err != nil {
		return nil, &internal.MalformedHistoricalError{Err: err}
	}

	byDate := make(map[internal.Date]decimal.Decimal, len(bpi))
	for d, raw := range bpi {
		if isNull(raw) {
			return nil, &internal.MalformedHistoricalError{Err: fmt.Errorf("close on %s: %w", d, errNullValue)}
		}
		var price decimal.Decimal
		if err := json.Unmarshal(raw, &price); err != nil {
			return nil, &internal.MalformedHistoricalError{Err: fmt.Errorf("close on %s: %w", d, err)}
		}
		byDate[d] = price
	}
	return internal.NewHistoricalSeries(byDate), nil
}
