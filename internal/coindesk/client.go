package coindesk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"bpi-report/internal"
)

const (
	DefaultBaseURL = "https://api.coindesk.com/v1/bpi"
	DefaultTimeout = 20 * time.Second

	maxBodyBytes = 256 << 10
)

type Client struct {
	BaseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
	audit      internal.RequestAuditLogger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: baseURL,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
			// each lookup opens its own connection
			Transport: &http.Transport{
				Proxy:             http.ProxyFromEnvironment,
				DisableKeepAlives: true,
			},
		},
		logger: logger,
		audit:  internal.NewSlogAuditLogger(logger),
	}
}

// CurrentPriceURL is <base>/currentprice/<code>.json with the code as typed.
func (c *Client) CurrentPriceURL(code internal.CurrencyCode) string {
	return c.BaseURL + "/currentprice/" + url.PathEscape(code.String()) + ".json"
}

// HistoricalCloseURL keeps the start, end, currency parameter order the
// service documents.
func (c *Client) HistoricalCloseURL(code internal.CurrencyCode, window internal.RequestWindow) string {
	return fmt.Sprintf("%s/historical/close.json?start=%s&end=%s&currency=%s",
		c.BaseURL, window.Start, window.End, url.QueryEscape(code.String()))
}

func (c *Client) get(ctx context.Context, rawURL string, window *internal.RequestWindow) (int, []byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	status := resp.StatusCode
	c.audit.LogRequest(ctx, req.URL.Path, &status, window)

	if status != http.StatusOK {
		return status, nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return status, nil, fmt.Errorf("read response body: %w", err)
	}
	return status, body, nil
}

// CurrentPrice fetches the current Bitcoin rate in code.
//
// A non-200 status is an *internal.StatusError and a 200 response without a
// usable bpi.<CODE> object is a plain wrap; both match
// internal.ErrUnsupportedCurrency. A 200 response that cannot be parsed
// yields *internal.MalformedCurrentPriceError.
func (c *Client) CurrentPrice(ctx context.Context, code internal.CurrencyCode) (internal.PriceQuote, error) {
	status, body, err := c.get(ctx, c.CurrentPriceURL(code), nil)
	if err != nil {
		return internal.PriceQuote{}, fmt.Errorf("current price: %w", err)
	}
	if status != http.StatusOK {
		return internal.PriceQuote{}, &internal.StatusError{Endpoint: "currentprice", StatusCode: status, Err: internal.ErrUnsupportedCurrency}
	}

	quote, err := ParseCurrentPrice(body, code)
	if err != nil {
		var malformed *internal.MalformedCurrentPriceError
		if errors.As(err, &malformed) {
			c.logger.ErrorContext(ctx, "Error while reading JSON data", slog.String("endpoint", "currentprice"), slog.Any("error", err))
		}
		return internal.PriceQuote{}, err
	}
	return quote, nil
}

// HistoricalClose fetches the daily closes for window.
//
// A non-200 status is an *internal.StatusError matching
// internal.ErrCurrencyNotFound. An unparseable
// body is logged and reported as an empty series.
func (c *Client) HistoricalClose(ctx context.Context, code internal.CurrencyCode, window internal.RequestWindow) (internal.HistoricalSeries, error) {
	status, body, err := c.get(ctx, c.HistoricalCloseURL(code, window), &window)
	if err != nil {
		return nil, fmt.Errorf("historical close: %w", err)
	}
	if status != http.StatusOK {
		return nil, &internal.StatusError{Endpoint: "historical", StatusCode: status, Err: internal.ErrCurrencyNotFound}
	}

	series, err := ParseHistoricalClose(body)
	if err != nil {
		c.logger.ErrorContext(ctx, "Error while reading JSON data", slog.String("endpoint", "historical"), slog.Any("error", err))
		return internal.HistoricalSeries{}, nil
	}
	return series, nil
}
