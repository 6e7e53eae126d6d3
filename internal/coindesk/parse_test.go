package coindesk_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bpi-report/internal"
	"bpi-report/internal/coindesk"
)

func TestParseCurrentPrice(t *testing.T) {
	quote, err := coindesk.ParseCurrentPrice([]byte(currentPriceBody), "eur")

	require.NoError(t, err)
	assert.Equal(t, internal.CurrencyCode("EUR"), quote.Currency)
	assert.Equal(t, "22491.6891", quote.Rate.String())
}

func TestParseCurrentPrice_EmptyCurrencyObject(t *testing.T) {
	body := `{"bpi":{"USD":{"code":"USD","rate_float":23088.6224},"EUR":{}}}`

	_, err := coindesk.ParseCurrentPrice([]byte(body), "eur")

	require.Error(t, err)
	assert.ErrorIs(t, err, internal.ErrUnsupportedCurrency)
}

func TestParseCurrentPrice_MissingCurrency(t *testing.T) {
	body := `{"bpi":{"Test":"Test"}}`

	_, err := coindesk.ParseCurrentPrice([]byte(body), "tyr")

	require.Error(t, err)
	assert.ErrorIs(t, err, internal.ErrUnsupportedCurrency)
}

func TestParseCurrentPrice_NotJSON(t *testing.T) {
	var target map[string]json.RawMessage
	parserErr := json.Unmarshal([]byte("Test"), &target)
	require.Error(t, parserErr)

	_, err := coindesk.ParseCurrentPrice([]byte("Test"), "eur")

	require.Error(t, err)
	var malformed *internal.MalformedCurrentPriceError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, parserErr.Error(), err.Error())
}

func TestParseCurrentPrice_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "no bpi", body: `{"time":{}}`, wantMsg: `key "bpi" not found`},
		{name: "no rate_float", body: `{"bpi":{"EUR":{"code":"EUR"}}}`, wantMsg: `key "rate_float" not found`},
		{name: "null rate_float", body: `{"bpi":{"EUR":{"code":"EUR","rate_float":null}}}`, wantMsg: "rate_float: null value"},
		{name: "padded null rate_float", body: `{"bpi":{"EUR":{"rate_float": null }}}`, wantMsg: "rate_float: null value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := coindesk.ParseCurrentPrice([]byte(tt.body), "eur")

			var malformed *internal.MalformedCurrentPriceError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestParseHistoricalClose(t *testing.T) {
	series, err := coindesk.ParseHistoricalClose([]byte(historicalBody))

	require.NoError(t, err)
	require.Equal(t, 3, series.Len())
	assert.Equal(t, "2022-07-05", series[0].Date.String())
	assert.Equal(t, "2022-07-10", series[2].Date.String())

	ext, err := series.Extremes()
	require.NoError(t, err)
	assert.Equal(t, "19364.2864", ext.Lowest.String())
	assert.Equal(t, "20745.4181", ext.Highest.String())
}

func TestParseHistoricalClose_NullCloseNamesDate(t *testing.T) {
	_, err := coindesk.ParseHistoricalClose([]byte(`{"bpi":{"2022-07-05":19364.2864,"2022-07-06":null}}`))

	require.Error(t, err)
	assert.Equal(t, "malformed historical response: close on 2022-07-06: null value", err.Error())
}

func TestParseHistoricalClose_NormalizesDateKeys(t *testing.T) {
	series, err := coindesk.ParseHistoricalClose([]byte(`{"bpi":{" 2022-07-06 ":2,"2022-07-05":"1.50"}}`))

	require.NoError(t, err)
	require.Equal(t, 2, series.Len())
	assert.Equal(t, "2022-07-05", series[0].Date.String())
	assert.Equal(t, "1.5", series[0].Price.String())
	assert.Equal(t, "2022-07-06", series[1].Date.String())
}

func TestParseHistoricalClose_EmptyBPI(t *testing.T) {
	series, err := coindesk.ParseHistoricalClose([]byte(`{"bpi":{}}`))

	require.NoError(t, err)
	assert.Equal(t, 0, series.Len())
}

func TestParseHistoricalClose_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "Test"},
		{name: "no bpi", body: `{"time":{}}`},
		{name: "bad date", body: `{"bpi":{"July 5":19364.2864}}`},
		{name: "bad price", body: `{"bpi":{"2022-07-05":"abc"}}`},
		{name: "null close", body: `{"bpi":{"2022-07-05":19364.2864,"2022-07-06":null}}`},
		{name: "bpi not an object", body: `{"bpi":[19364.2864]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := coindesk.ParseHistoricalClose([]byte(tt.body))

			var malformed *internal.MalformedHistoricalError
			require.ErrorAs(t, err, &malformed)
			assert.Empty(t, series)
		})
	}
}
