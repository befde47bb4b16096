package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Database DatabaseConfig `toml:"database"`
	Theme    ThemeConfig    `toml:"theme"`
	UI       UIConfig       `toml:"ui"`
	Confirm  ConfirmConfig  `toml:"confirm"`
	Logging  LoggingConfig  `toml:"logging"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type ThemeConfig struct {
	Name string `toml:"name"`
}

type UIConfig struct {
	ShowDescriptions bool   `toml:"show_descriptions"`
	DateFormat       string `toml:"date_format"`
}

type ConfirmConfig struct {
	Deletions bool `toml:"deletions"`
}

type LoggingConfig struct {
	Level   string `toml:"level"`
	DevFile string `toml:"dev_file"`
}

func Default(dbPath string) Config {
	return Config{
		Database: DatabaseConfig{
			Path: dbPath,
		},
		Theme: ThemeConfig{
			Name: "dark",
		},
		UI: UIConfig{
			ShowDescriptions: true,
			DateFormat:       "2006-01-02",
		},
		Confirm: ConfirmConfig{
			Deletions: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database path is required")
	}

	if strings.TrimSpace(c.Theme.Name) == "" {
		return errors.New("theme name is required")
	}

	switch strings.TrimSpace(strings.ToLower(c.Logging.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}

	if format := c.UI.DateFormat; format != "" {
		// Round-trip the reference date to catch formats that cannot parse back.
		reference := time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)
		if _, err := time.Parse(format, reference.Format(format)); err != nil {
			return fmt.Errorf("invalid ui.date_format: %q", format)
		}
	}

	return nil
}

// UpsertTheme rewrites only the theme name in the config file at path,
// preserving every other key the user may have set by hand.
func UpsertTheme(path, theme string) error {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return errors.New("theme name is required")
	}
	if strings.TrimSpace(path) == "" {
		return errors.New("config path is required")
	}

	raw := map[string]any{}
	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read config: %w", err)
	}
	if len(content) > 0 {
		if err := toml.Unmarshal(content, &raw); err != nil {
			return fmt.Errorf("decode toml: %w", err)
		}
	}

	section, ok := raw["theme"].(map[string]any)
	if !ok {
		section = map[string]any{}
	}
	section["name"] = theme
	raw["theme"] = section

	out, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func EnsureConfigDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
