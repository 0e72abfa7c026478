package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"
	"github.com/nicwaller/linesplit"
	"github.com/nicwaller/linesplit/codec"
	"github.com/nicwaller/linesplit/framing"
	"github.com/nicwaller/linesplit/output"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run reads all of stdin, splits it into lines and prints them.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("linesplit", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		configPath = flags.String("config", "", "YAML config file")
		format     = flags.String("format", "plain", fmt.Sprintf("output format, one of %v", codec.Names()))
		number     = flags.Bool("number", false, "prefix each line with its line number")
		width      = flags.Int("width", 0, "minimum width of the line number column")
		skipEmpty  = flags.Bool("skip-empty", false, "don't print empty lines")
		noColor    = flags.Bool("no-color", false, "disable colour")
		logLevel   = flags.String("log-level", "warn", "debug, info, warn or error")
	)
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	cfg := defaults()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			fmt.Fprintf(stderr, "linesplit: %s\n", err)
			return exitUsage
		}
	}
	// flags given on the command line win over the config file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "number":
			cfg.Number = *number
		case "width":
			cfg.Width = *width
		case "skip-empty":
			cfg.SkipEmpty = *skipEmpty
		case "no-color":
			cfg.NoColor = *noColor
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "linesplit: %s\n", err)
		return exitUsage
	}
	setupLogging(stderr, level, cfg.NoColor)
	slog.Debug("effective config", "config", cfg.String())

	if cfg.Number && cfg.Format == "plain" {
		cfg.Format = "numbered"
	}
	lineCodec, err := codec.ByName(cfg.Format, codec.Options{Width: cfg.Width, NoColor: cfg.NoColor})
	if err != nil {
		fmt.Fprintf(stderr, "linesplit: %s\n", err)
		return exitUsage
	}

	p := linesplit.NewPipeline("linesplit", linesplit.PipelineOptions{
		Framing:               framing.Lines(),
		SkipEmpty:             cfg.SkipEmpty,
		StalledInputThreshold: 10 * time.Second,
	})
	p.Output("stdout", output.Writer(output.WriterOptions{
		Codec:  lineCodec,
		Writer: stdout,
	}))

	result, err := p.Run(ctx, stdin)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Info("interrupted")
		} else {
			slog.Error("failed to split input", "error", err)
		}
		return exitError
	}
	slog.Info("done", "summary", result.Summary())
	if result.Errors > 0 {
		return exitError
	}
	return exitOK
}

func setupLogging(w io.Writer, level slog.Level, noColor bool) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		}),
	))
}
