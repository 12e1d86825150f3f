// Package config loads the settings of the vntok command: where the
// compiled lexicon lives, an optional user word list, and logging.
//
// Settings come from a YAML file, then from the environment:
//
//	VNTOK_LEXICON_PATH  overrides lexicon_path
//	VNTOK_LOG_LEVEL     overrides log_level
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvLexiconPath = "VNTOK_LEXICON_PATH"
	EnvLogLevel    = "VNTOK_LOG_LEVEL"
)

// ErrNoLexicon is returned by Validate when no lexicon path is set.
var ErrNoLexicon = errors.New("config: lexicon_path is required")

// Config holds the command settings.
type Config struct {
	LexiconPath     string `yaml:"lexicon_path"`
	UserLexiconPath string `yaml:"user_lexicon_path,omitempty"`
	FoldDiacritics  bool   `yaml:"fold_diacritics,omitempty"`
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"` // "text" or "json"
}

// Default returns the settings used when a key is absent.
func Default() Config {
	return Config{
		LexiconPath: "lexicon.dfa",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads the YAML file at path over Default, then applies the
// environment. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()

	return cfg, cfg.Validate()
}

// ApplyEnv overrides settings from VNTOK_* variables that are set and non-empty.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLexiconPath); v != "" {
		c.LexiconPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the settings.
func (c Config) Validate() error {
	if strings.TrimSpace(c.LexiconPath) == "" {
		return ErrNoLexicon
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: log_format %q: want text or json", c.LogFormat)
	}

	return nil
}

// Logger returns a logrus logger configured from the settings.
func (c Config) Logger() *logrus.Logger {
	l := logrus.New()
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	l.SetOutput(os.Stderr)

	return l
}
