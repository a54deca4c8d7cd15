// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/bible-search/pkg/types"
)

// logger carries diagnostics to stderr. Search output never goes through it.
var logger = zerolog.Nop()

func setupLogger(cfg types.LogConfig, w io.Writer) error {
	l, err := newLogger(cfg, w)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func newLogger(cfg types.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log.level %q: %w", cfg.Level, err)
	}

	switch cfg.Format {
	case "json":
	case "console", "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log.format %q: use console or json", cfg.Format)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
