package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type config struct {
	Format    string `yaml:"format"`
	Number    bool   `yaml:"number"`
	Width     int    `yaml:"width"`
	SkipEmpty bool   `yaml:"skip_empty"`
	NoColor   bool   `yaml:"no_color"`
	LogLevel  string `yaml:"log_level"`
}

func defaults() config {
	return config{
		Format:   "plain",
		LogLevel: "warn",
	}
}

// loadConfig reads a YAML config file on top of the defaults.
// Unknown keys are an error.
func loadConfig(path string) (config, error) {
	cfg := defaults()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	return decodeConfig(cfg, f)
}

func decodeConfig(cfg config, r io.Reader) (config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("bad config: %w", err)
	}
	return cfg, nil
}

func (c config) String() string {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	_ = enc.Encode(c)
	_ = enc.Close()
	return strings.TrimSpace(buf.String())
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}
