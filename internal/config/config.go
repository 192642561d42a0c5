// Package config holds voxpdf CLI configuration: built-in defaults,
// overridden by an optional YAML file, overridden by VOXPDF_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tsawler/voxpdf/layout"
	"github.com/tsawler/voxpdf/text"
	"gopkg.in/yaml.v3"
)

// Config is the top-level CLI configuration.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Output     string           `yaml:"output"` // json | text
	Workers    int              `yaml:"workers"`
	KeepHyphen bool             `yaml:"keep_hyphens"`
	Words      WordsConfig      `yaml:"words"`
	Paragraphs ParagraphsConfig `yaml:"paragraphs"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// WordsConfig tunes glyph-to-word assembly.
type WordsConfig struct {
	LineTolerance      float64 `yaml:"line_tolerance"`
	WordGapRatio       float64 `yaml:"word_gap_ratio"`
	SpacedWordGapRatio float64 `yaml:"spaced_word_gap_ratio"`
}

// ParagraphsConfig tunes paragraph detection.
type ParagraphsConfig struct {
	LineThreshold   float64 `yaml:"line_threshold"`
	SpacingRatio    float64 `yaml:"spacing_ratio"`
	FontChangeRatio float64 `yaml:"font_change_ratio"`
	IndentThreshold float64 `yaml:"indent_threshold"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadFile reads a YAML configuration file. Missing fields take their
// defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	words := text.DefaultConfig()
	paragraphs := layout.DefaultParagraphConfig()

	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Output == "" {
		c.Output = "json"
	}
	if c.Words.LineTolerance <= 0 {
		c.Words.LineTolerance = words.LineTolerance
	}
	if c.Words.WordGapRatio <= 0 {
		c.Words.WordGapRatio = words.WordGapRatio
	}
	if c.Words.SpacedWordGapRatio <= 0 {
		c.Words.SpacedWordGapRatio = words.SpacedWordGapRatio
	}
	if c.Paragraphs.LineThreshold <= 0 {
		c.Paragraphs.LineThreshold = paragraphs.Line.YThreshold
	}
	if c.Paragraphs.SpacingRatio <= 0 {
		c.Paragraphs.SpacingRatio = paragraphs.SpacingRatio
	}
	if c.Paragraphs.FontChangeRatio <= 0 {
		c.Paragraphs.FontChangeRatio = paragraphs.FontChangeRatio
	}
	if c.Paragraphs.IndentThreshold <= 0 {
		c.Paragraphs.IndentThreshold = paragraphs.IndentThreshold
	}
}

// ApplyEnv overrides fields from VOXPDF_* environment variables. Unparseable
// values are ignored.
func (c *Config) ApplyEnv() {
	c.Log.Level = envOr("VOXPDF_LOG_LEVEL", c.Log.Level)
	c.Log.Format = envOr("VOXPDF_LOG_FORMAT", c.Log.Format)
	c.Output = envOr("VOXPDF_OUTPUT", c.Output)
	c.Workers = envInt("VOXPDF_WORKERS", c.Workers)
	c.KeepHyphen = envBool("VOXPDF_KEEP_HYPHENS", c.KeepHyphen)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q", c.Output)
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	if c.Paragraphs.FontChangeRatio < 1 {
		return fmt.Errorf("paragraphs.font_change_ratio must be at least 1, got %g", c.Paragraphs.FontChangeRatio)
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// TextConfig returns the word assembly settings.
func (c *Config) TextConfig() text.Config {
	cfg := text.DefaultConfig()
	cfg.LineTolerance = c.Words.LineTolerance
	cfg.WordGapRatio = c.Words.WordGapRatio
	cfg.SpacedWordGapRatio = c.Words.SpacedWordGapRatio
	return cfg
}

// ParagraphConfig returns the paragraph detection settings.
func (c *Config) ParagraphConfig() layout.ParagraphConfig {
	cfg := layout.DefaultParagraphConfig()
	cfg.Line.YThreshold = c.Paragraphs.LineThreshold
	cfg.SpacingRatio = c.Paragraphs.SpacingRatio
	cfg.FontChangeRatio = c.Paragraphs.FontChangeRatio
	cfg.IndentThreshold = c.Paragraphs.IndentThreshold
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
