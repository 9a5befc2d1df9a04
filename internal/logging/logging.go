// Package logging configures the zerolog logger shared by the CLI and the robot.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"toyrobot/internal/config"
)

const (
	EnvLogLevel     = "TOYROBOT_LOG_LEVEL"
	EnvLogTimestamp = "TOYROBOT_LOG_TIMESTAMP"
	EnvLogNoColor   = "TOYROBOT_LOG_NOCOLOR"
)

// Rotation limits for file output.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// New builds a logger from cfg after applying environment overrides. Console
// output goes to w; when cfg.File is set records are written as JSON to a
// rotating file instead. The returned closer releases that file.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, io.Closer) {
	applyEnvOverrides(&cfg, os.Getenv)
	level, _ := parseLevel(cfg.Level)

	var (
		out    io.Writer
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
		out, closer = file, file
	} else {
		cw := zerolog.ConsoleWriter{
			Out:     w,
			NoColor: cfg.NoColor || !isTerminal(w),
		}
		if !cfg.Timestamp {
			cw.PartsExclude = []string{zerolog.TimestampFieldName}
		}
		out = cw
	}

	ctx := zerolog.New(out).Level(level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger(), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func applyEnvOverrides(cfg *config.LogConfig, getenv func(string) string) {
	if raw := strings.TrimSpace(getenv(EnvLogLevel)); raw != "" {
		if _, ok := parseLevel(raw); ok {
			cfg.Level = raw
		}
	}
	if v, ok := parseBool(getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info", "":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
