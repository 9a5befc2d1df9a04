// Package config loads toyrobot settings from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"toyrobot/internal/model"
)

type Config struct {
	Table TableConfig `toml:"table" yaml:"table"`
	Log   LogConfig   `toml:"log" yaml:"log"`
}

type TableConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Length int `toml:"length" yaml:"length"`
}

type LogConfig struct {
	Level     string `toml:"level" yaml:"level"`
	File      string `toml:"file" yaml:"file"`
	NoColor   bool   `toml:"no_color" yaml:"no_color"`
	Timestamp bool   `toml:"timestamp" yaml:"timestamp"`
}

var levels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

func Default() Config {
	return Config{
		Table: TableConfig{Width: model.DefaultWidth, Length: model.DefaultLength},
		Log:   LogConfig{Level: "info", Timestamp: true},
	}
}

// Load reads path on top of Default. The format follows the file extension.
func Load(path string) (Config, error) {
	cfg := Default()
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = loadTOML(path, &cfg)
	case ".yaml", ".yml":
		err = loadYAML(path, &cfg)
	default:
		return Config{}, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func loadTOML(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := c.Table.Table(); err != nil {
		return err
	}
	if !ValidLevel(c.Log.Level) {
		return fmt.Errorf("unknown log level %q, expected one of %s", c.Log.Level, strings.Join(levels, ", "))
	}
	return nil
}

// Table builds the model table for the configured dimensions.
func (t TableConfig) Table() (model.Table, error) {
	return model.NewTable(t.Width, t.Length)
}

func ValidLevel(level string) bool {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "", "warning", "off", "none":
		return true
	}
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}
