package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"bpi-report/internal"
)

type PriceSource interface {
	CurrentPrice(ctx context.Context, code internal.CurrencyCode) (internal.PriceQuote, error)
	HistoricalClose(ctx context.Context, code internal.CurrencyCode, window internal.RequestWindow) (internal.HistoricalSeries, error)
}

type LineSource interface {
	ReadLine() (string, error)
}

type State int

const (
	AwaitingInput State = iota
	FetchingCurrent
	FetchingHistorical
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting_input"
	case FetchingCurrent:
		return "fetching_current"
	case FetchingHistorical:
		return "fetching_historical"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Report is the outcome of one run. Messages holds every user-facing line in
// the order it was logged.
type Report struct {
	RunID    string
	State    State
	Currency internal.CurrencyCode
	Window   internal.RequestWindow
	Current  *internal.PriceQuote
	Extremes *internal.Extremes
	Messages []string
	Err      error
}

type Pipeline struct {
	input      LineSource
	source     PriceSource
	logger     *slog.Logger
	now        func() time.Time
	windowDays int
}

type Option func(*Pipeline)

func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

func WithWindowDays(days int) Option {
	return func(p *Pipeline) {
		if days > 0 {
			p.windowDays = days
		}
	}
}

func New(input LineSource, source PriceSource, logger *slog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		input:      input,
		source:     source,
		logger:     logger,
		now:        time.Now,
		windowDays: internal.DefaultWindowDays,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run prompts for a currency code and reports on it. It never panics; every
// failure ends in the Failed state and is logged.
func (p *Pipeline) Run(ctx context.Context) (rep Report) {
	run := p.newRun()
	defer run.recoverPanic(ctx, &rep)
	rep.RunID = run.id

	run.info(ctx, &rep, promptMessage)
	line, err := p.input.ReadLine()
	if err != nil {
		run.fail(ctx, &rep, fmt.Errorf("read currency code: %w", err))
		return rep
	}

	run.report(ctx, &rep, internal.NewCurrencyCode(line))
	return rep
}

// RunFor reports on code without reading input.
func (p *Pipeline) RunFor(ctx context.Context, code internal.CurrencyCode) (rep Report) {
	run := p.newRun()
	defer run.recoverPanic(ctx, &rep)
	rep.RunID = run.id

	run.report(ctx, &rep, code)
	return rep
}

type pipelineRun struct {
	*Pipeline
	id     string
	logger *slog.Logger
}

func (p *Pipeline) newRun() *pipelineRun {
	id := uuid.NewString()
	return &pipelineRun{
		Pipeline: p,
		id:       id,
		logger:   p.logger.With(slog.String("run_id", id)),
	}
}

func (r *pipelineRun) report(ctx context.Context, rep *Report, code internal.CurrencyCode) {
	rep.Currency = code
	r.logger = r.logger.With(slog.String("currency", code.String()))

	rep.State = FetchingCurrent
	if !r.fetchCurrent(ctx, rep, code) {
		return
	}

	rep.State = FetchingHistorical
	rep.Window = internal.NewRequestWindow(r.now(), r.windowDays)
	r.fetchHistorical(ctx, rep, code)
}

func (r *pipelineRun) fetchCurrent(ctx context.Context, rep *Report, code internal.CurrencyCode) bool {
	quote, err := r.source.CurrentPrice(ctx, code)

	var statusErr *internal.StatusError
	var malformed *internal.MalformedCurrentPriceError
	switch {
	case err == nil:
		rep.Current = &quote
		r.info(ctx, rep, currentRateMessage(quote))
		return true
	case errors.As(err, &statusErr):
		r.info(ctx, rep, unsupportedMessage(code))
		rep.State = Failed
		rep.Err = err
		return false
	case errors.Is(err, internal.ErrUnsupportedCurrency):
		// the service answered 200, so the historical lookup still runs
		r.info(ctx, rep, unsupportedMessage(code))
		return true
	case errors.As(err, &malformed):
		r.info(ctx, rep, malformed.Error())
		return true
	default:
		r.fail(ctx, rep, err)
		return false
	}
}

func (r *pipelineRun) fetchHistorical(ctx context.Context, rep *Report, code internal.CurrencyCode) {
	series, err := r.source.HistoricalClose(ctx, code, rep.Window)
	if err != nil {
		if errors.Is(err, internal.ErrCurrencyNotFound) {
			r.info(ctx, rep, notFoundMessage)
			rep.State = Failed
			rep.Err = err
			return
		}
		r.fail(ctx, rep, err)
		return
	}

	days := rep.Window.Days()
	for _, c := range series {
		r.logger.DebugContext(ctx, "daily close", slog.String("date", c.Date.String()), slog.String("price", c.Price.String()))
	}

	ext, err := series.Extremes()
	if errors.Is(err, internal.ErrNoHistoricalData) {
		r.info(ctx, rep, noDataMessage(days))
		rep.State = Done
		return
	}

	rep.Extremes = &ext
	r.info(ctx, rep, lowestMessage(days, ext))
	r.info(ctx, rep, highestMessage(days, ext))
	rep.State = Done
}

func (r *pipelineRun) info(ctx context.Context, rep *Report, msg string) {
	rep.Messages = append(rep.Messages, msg)
	r.logger.InfoContext(ctx, msg)
}

func (r *pipelineRun) fail(ctx context.Context, rep *Report, err error) {
	rep.State = Failed
	rep.Err = err
	r.logger.ErrorContext(ctx, exceptionMessage, slog.Any("error", err))
}

func (r *pipelineRun) recoverPanic(ctx context.Context, rep *Report) {
	v := recover()
	if v == nil {
		return
	}
	rep.State = Failed
	rep.Err = fmt.Errorf("panic: %v", v)
	r.logger.ErrorContext(ctx, exceptionMessage, slog.Any("error", rep.Err), slog.String("stack", string(debug.Stack())))
}
