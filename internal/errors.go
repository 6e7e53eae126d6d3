package internal

import (
	"errors"
	"fmt"
)

type BusinessError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *BusinessError) Error() string { return e.Message }

// Is matches business errors by code so wrapped copies with a different
// message still compare equal to the sentinels below.
func (e *BusinessError) Is(target error) bool {
	var t *BusinessError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func BizError(code, msg string) *BusinessError { return &BusinessError{Code: code, Message: msg} }

var (
	ErrUnsupportedCurrency = BizError("unsupported_currency", "currency is not supported or is invalid")
	ErrCurrencyNotFound    = BizError("currency_not_found", "currency was not found")
	ErrNoHistoricalData    = BizError("no_historical_data", "no historical data")
)

// StatusError is a non-200 reply from the price service. Err is the
// business error that status maps to.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s http %d: %v", e.Endpoint, e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

// MalformedCurrentPriceError is a 200 current-price response that could not
// be read. Its text is the parser's own diagnostic, unchanged.
type MalformedCurrentPriceError struct {
	Err error
}

func (e *MalformedCurrentPriceError) Error() string { return e.Err.Error() }
func (e *MalformedCurrentPriceError) Unwrap() error { return e.Err }

// MalformedHistoricalError is a 200 historical response that could not be
// read.
type MalformedHistoricalError struct {
	Err error
}

func (e *MalformedHistoricalError) Error() string {
	return fmt.Sprintf("malformed historical response: %v", e.Err)
}
func (e *MalformedHistoricalError) Unwrap() error { return e.Err }
