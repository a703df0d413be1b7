package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the CLI needs for one run.
type Config struct {
	Input       string
	Output      string
	LogLevel    slog.Level
	TowerDamage int
	MaxDamage   int // 0 means no cap
	Report      bool
	View        bool
	Trace       bool
}

// envDefault returns the value of key, or def if it is unset or empty.
func envDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// parseConfig reads flags from args; TOWERDEFENSE_* environment variables
// supply the defaults.
func parseConfig(args []string, stderr io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("towerdefense", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: towerdefense [flags] instXX.in solXX.out")
		fs.PrintDefaults()
	}

	traceDefault, _ := strconv.ParseBool(envDefault("TOWERDEFENSE_TRACE", "false"))
	levelStr := fs.String("log-level", envDefault("TOWERDEFENSE_LOG_LEVEL", "info"), "debug|info|warn|error")
	towerDamage := fs.Int("tower-damage", 10, "damage each tower deals to its neighbours")
	maxDamage := fs.Int("max-damage", 0, "give up on routes above this damage (0 = no cap)")
	report := fs.Bool("report", false, "also write <output>.json with the full report")
	view := fs.Bool("view", false, "show the board and route in the terminal")
	trace := fs.Bool("trace", traceDefault, "export traces via OTEL_EXPORTER_OTLP_* settings")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return nil, errors.New("expected an input and an output path")
	}

	lvl, err := parseLevel(*levelStr)
	if err != nil {
		return nil, err
	}
	if *towerDamage < 0 {
		return nil, errors.New("-tower-damage must be >= 0")
	}
	if *maxDamage < 0 {
		return nil, errors.New("-max-damage must be >= 0")
	}

	return &Config{
		Input:       fs.Arg(0),
		Output:      fs.Arg(1),
		LogLevel:    lvl,
		TowerDamage: *towerDamage,
		MaxDamage:   *maxDamage,
		Report:      *report,
		View:        *view,
		Trace:       *trace,
	}, nil
}
