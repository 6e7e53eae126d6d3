package internal

import (
	"strings"
)

// CurrencyCode is the code exactly as the user typed it. The remote service
// is the only judge of whether it is valid.
type CurrencyCode string

func NewCurrencyCode(s string) CurrencyCode {
	return CurrencyCode(s)
}

func (c CurrencyCode) Upper() CurrencyCode {
	return CurrencyCode(strings.ToUpper(string(c)))
}

func (c CurrencyCode) String() string { return string(c) }
