package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"toyrobot/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
		ok   bool
	}{
		{"trace", zerolog.TraceLevel, true},
		{"DEBUG", zerolog.DebugLevel, true},
		{" info ", zerolog.InfoLevel, true},
		{"", zerolog.InfoLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := parseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:     "debug",
		EnvLogTimestamp: "false",
		EnvLogNoColor:   "1",
	}
	cfg := config.Default().Log
	applyEnvOverrides(&cfg, func(k string) string { return env[k] })
	if cfg.Level != "debug" || cfg.Timestamp || !cfg.NoColor {
		t.Errorf("cfg = %+v", cfg)
	}

	env = map[string]string{EnvLogLevel: "loud", EnvLogTimestamp: "maybe"}
	cfg = config.Default().Log
	applyEnvOverrides(&cfg, func(k string) string { return env[k] })
	if cfg.Level != "info" || !cfg.Timestamp {
		t.Errorf("invalid overrides applied: %+v", cfg)
	}
}

func TestConsoleOutput(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	var buf bytes.Buffer
	log, closer := New(config.LogConfig{Level: "warn"}, &buf)
	defer closer.Close()

	log.Info().Msg("hidden")
	log.Warn().Str("position", "4,4,NORTH").Msg("move refused")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "move refused") || !strings.Contains(out, "4,4,NORTH") {
		t.Errorf("output = %q", out)
	}
}

func TestFileOutput(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "robot.log")
	log, closer := New(config.LogConfig{Level: "debug", File: path}, os.Stderr)
	log.Debug().Msg("placed")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"message":"placed"`) {
		t.Errorf("log file = %q", data)
	}
}
