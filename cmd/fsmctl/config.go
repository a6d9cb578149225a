package main

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

// Config is read from the environment and optional .env files.
type Config struct {
	Env             string `env:"FSM_ENV" envDefault:"development"`
	Definition      string `env:"FSM_DEFINITION"`
	HistoryCapacity int    `env:"FSM_HISTORY_CAPACITY" envDefault:"10"`
	// LogLevel and LogFormat override the defaults of Env when set.
	LogLevel  string `env:"FSM_LOG_LEVEL"`
	LogFormat string `env:"FSM_LOG_FORMAT"`
}

func (c Config) loggerOptions() ([]logger.Option, error) {
	opts := []logger.Option{logger.WithEnvironment(c.Env, "fsmctl")}

	if c.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return nil, fmt.Errorf("FSM_LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}

	switch f := logger.Format(c.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("FSM_LOG_FORMAT: unsupported format %q", c.LogFormat)
	}
	return opts, nil
}
