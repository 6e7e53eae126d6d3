package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"bpi-report/internal"
	"bpi-report/internal/coindesk"
	"bpi-report/internal/console"
	"bpi-report/internal/logging"
	"bpi-report/internal/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Lookup failures are reported through the logger; only a broken setup
	// gets a non-zero exit.
	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	// env
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// logger
	logger := logging.New(stdout, logging.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Prefix:     cfg.Log.Prefix,
		TimeFormat: cfg.Log.TimeFormat,
		Caller:     cfg.Log.Caller,
	})
	if !cfg.EnvFileLoaded {
		logger.Debug("no .env file loaded, using process environment")
	}

	loc, err := time.LoadLocation(cfg.Location)
	if err != nil {
		return fmt.Errorf("load location %s: %w", cfg.Location, err)
	}

	// client + pipeline
	client := coindesk.New(cfg.BaseURL, cfg.HTTPTimeout, logger)
	p := pipeline.New(
		console.NewLineReader(stdin),
		client,
		logger,
		pipeline.WithClock(func() time.Time { return time.Now().In(loc) }),
		pipeline.WithWindowDays(cfg.WindowDays),
	)

	rep := p.Run(ctx)
	logger.Debug("run finished", slog.String("run_id", rep.RunID), slog.String("state", rep.State.String()))

	if cfg.WatchCron == "" || rep.State != pipeline.Done {
		return nil
	}
	return watch(ctx, logger, cfg.WatchCron, loc, p, rep.Currency)
}

// watch re-reports code on schedule until ctx is cancelled.
func watch(
	ctx context.Context,
	logger *slog.Logger,
	schedule string,
	loc *time.Location,
	p *pipeline.Pipeline,
	code internal.CurrencyCode,
) error {
	cronLog := cronLogger{logger: logger}
	scheduler := cron.New(
		cron.WithLocation(loc),
		cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.SkipIfStillRunning(cronLog)),
	)

	g, gctx := errgroup.WithContext(ctx)

	_, err := scheduler.AddFunc(schedule, func() {
		rep := p.RunFor(gctx, code)
		logger.Debug("scheduled run finished", slog.String("run_id", rep.RunID), slog.String("state", rep.State.String()))
	})
	if err != nil {
		return fmt.Errorf("add cron func: %w", err)
	}

	g.Go(func() error {
		return runCron(gctx, scheduler)
	})

	logger.Info("Watching Bitcoin rates. Stop with Ctrl+C / SIGTERM.", slog.String("currency", code.String()), slog.String("schedule", schedule))
	return g.Wait()
}

func runCron(ctx context.Context, c *cron.Cron) error {
	c.Start()
	defer func() {
		stopCtx := c.Stop()
		<-stopCtx.Done()
	}()

	<-ctx.Done()
	return nil
}

type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append([]interface{}{slog.Any("error", err)}, keysAndValues...)...)
}
