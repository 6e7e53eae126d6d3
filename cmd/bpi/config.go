package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "BPI"

type LogConfig struct {
	Level      string `envconfig:"LEVEL" default:"info"`
	Format     string `envconfig:"FORMAT" default:"text"`
	Prefix     string `envconfig:"PREFIX"`
	TimeFormat string `envconfig:"TIME_FORMAT"`
	Caller     bool   `envconfig:"CALLER" default:"false"`
}

// Config never carries the currency code; that is always read from stdin.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.coindesk.com/v1/bpi"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"20s"`
	WindowDays  int           `envconfig:"WINDOW_DAYS" default:"30"`
	Location    string        `envconfig:"LOCATION" default:"Local"`
	WatchCron   string        `envconfig:"WATCH_CRON"`
	Log         LogConfig     `envconfig:"LOG"`

	EnvFileLoaded bool `ignored:"true"`
}

func LoadConfig(envFiles ...string) (Config, error) {
	var cfg Config
	cfg.EnvFileLoaded = godotenv.Overload(envFiles...) == nil

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("%s_BASE_URL is empty", envPrefix)
	}
	if cfg.HTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("%s_HTTP_TIMEOUT must be positive, got %s", envPrefix, cfg.HTTPTimeout)
	}
	if cfg.WindowDays <= 0 {
		return Config{}, fmt.Errorf("%s_WINDOW_DAYS must be positive, got %d", envPrefix, cfg.WindowDays)
	}
	cfg.WatchCron = strings.TrimSpace(cfg.WatchCron)

	return cfg, nil
}
