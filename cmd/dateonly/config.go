// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/dateonly"
	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"
)

// config represents the optional yaml configuration file, eg:
//
//	format: d
//	year: 2024
//	log_level: debug
type config struct {
	Format   string `yaml:"format"`
	Year     int    `yaml:"year"`
	LogLevel string `yaml:"log_level"`
}

type CommonFlags struct {
	Config   string `subcmd:"config,,'yaml configuration file'"`
	Format   string `subcmd:"format,,'output format, one of d (MM/DD/YYYY), o or O (YYYY-MM-DD), the default is o'"`
	Year     int    `subcmd:"year,0,'the year to use for dates specified as month and day only, the system clock is used if zero'"`
	LogLevel string `subcmd:"log-level,,'one of debug, info, warn or error'"`
}

// merge applies the flags on top of the configuration file, if any.
func (cf CommonFlags) merge(ctx context.Context) (config, error) {
	var cfg config
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFile(ctx, cf.Config, &cfg); err != nil {
			return config{}, err
		}
	}
	if len(cf.Format) > 0 {
		cfg.Format = cf.Format
	}
	if cf.Year != 0 {
		cfg.Year = cf.Year
	}
	if len(cf.LogLevel) > 0 {
		cfg.LogLevel = cf.LogLevel
	}
	if len(cfg.Format) == 0 {
		cfg.Format = dateonly.FormatISO
	}
	if _, err := dateonly.MinValue().Format(cfg.Format); err != nil {
		return config{}, err
	}
	if cfg.Year < 0 || cfg.Year > dateonly.MaxYear {
		return config{}, fmt.Errorf("year %d is out of range", cfg.Year)
	}
	return cfg, nil
}

// setup reads the configuration and returns a context that contains
// the logger and, if a year is configured, the year to use for dates
// specified without one.
func setup(ctx context.Context, cf CommonFlags) (context.Context, config, error) {
	cfg, err := cf.merge(ctx)
	if err != nil {
		return ctx, config{}, err
	}
	level := slog.LevelWarn
	if len(cfg.LogLevel) > 0 {
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return ctx, config{}, fmt.Errorf("invalid log level: %q: %w", cfg.LogLevel, err)
		}
	}
	ctx = ctxlog.NewJSONLogger(ctx, os.Stderr, &slog.HandlerOptions{Level: level})
	if cfg.Year != 0 {
		ctx = datetime.ContextWithYearAndPlace(ctx, datetime.NewYearAndPlace(cfg.Year, time.Local))
	}
	ctxlog.Logger(ctx).Debug("configuration", "config", cf.Config, "format", cfg.Format, "year", cfg.Year)
	return ctx, cfg, nil
}
