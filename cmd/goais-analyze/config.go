package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"gitlab.com/d21d3q/goais/internal/options"
)

const envLogLevel = "GOAIS_LOG_LEVEL"

type config struct {
	LogLevel   logrus.Level
	SkipErrors bool
	Types      options.TypeFilter
	JSONIndent string
}

func defaultConfig() config {
	return config{
		LogLevel:   logrus.InfoLevel,
		SkipErrors: true,
		JSONIndent: "  ",
	}
}

type fileConfig struct {
	LogLevel   string `toml:"log_level"`
	SkipErrors bool   `toml:"skip_errors"`
	Types      string `toml:"types"`
	JSONIndent string `toml:"json_indent"`
}

// loadConfig overlays the keys present in the TOML file onto cfg.
func loadConfig(path string, cfg config) (config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load goais config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("load goais config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		if cfg.LogLevel, err = logrus.ParseLevel(strings.TrimSpace(raw.LogLevel)); err != nil {
			return config{}, fmt.Errorf("parse log_level: %w", err)
		}
	}
	if meta.IsDefined("skip_errors") {
		cfg.SkipErrors = raw.SkipErrors
	}
	if meta.IsDefined("types") {
		if cfg.Types, err = options.ParseTypeFilter(raw.Types); err != nil {
			return config{}, fmt.Errorf("parse types: %w", err)
		}
	}
	if meta.IsDefined("json_indent") {
		cfg.JSONIndent = raw.JSONIndent
	}
	return cfg, nil
}

// applyEnv lets GOAIS_LOG_LEVEL override the configured level.
func applyEnv(cfg config, getenv func(string) string) (config, error) {
	if v := strings.TrimSpace(getenv(envLogLevel)); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return config{}, fmt.Errorf("parse %s: %w", envLogLevel, err)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}
