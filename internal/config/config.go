// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ironsheep/screen-text-ocr/internal/ocr"
)

// Environment variable names.
const (
	EnvDebugDir  = "SCREENTEXT_DEBUG_DIR"
	EnvLanguage  = "SCREENTEXT_LANGUAGE"
	EnvTessdata  = "SCREENTEXT_TESSDATA"
	EnvLogLevel  = "SCREENTEXT_LOG_LEVEL"
	EnvEncoding  = "SCREENTEXT_ENCODING"
	EnvWhitelist = "SCREENTEXT_WHITELIST"
)

// Config holds the settings read from the environment.
type Config struct {
	// DebugDir is where enhanced images are written. Empty disables debug output.
	DebugDir string

	// Languages are the Tesseract language codes, from a '+' or ',' separated list.
	Languages []string

	TessdataPrefix string
	Whitelist      string
	Encoding       ocr.Encoding
	LogLevel       zerolog.Level
}

// Load reads the configuration. A .env file in the working directory or next
// to the executable is loaded first if present; variables already set in the
// environment take precedence over it.
func Load() (*Config, error) {
	envPaths := []string{".env"}
	if execPath, err := os.Executable(); err == nil {
		envPaths = append(envPaths, filepath.Join(filepath.Dir(execPath), ".env"))
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return nil, err
			}
			break
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	encoding, err := ocr.ParseEncoding(os.Getenv(EnvEncoding))
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(strings.ToLower(getEnvWithDefault(EnvLogLevel, "info")))
	if err != nil {
		return nil, err
	}

	return &Config{
		DebugDir:       os.Getenv(EnvDebugDir),
		Languages:      splitList(getEnvWithDefault(EnvLanguage, "eng")),
		TessdataPrefix: os.Getenv(EnvTessdata),
		Whitelist:      os.Getenv(EnvWhitelist),
		Encoding:       encoding,
		LogLevel:       level,
	}, nil
}

// OCROptions converts the configuration into recognizer options.
func (c *Config) OCROptions() ocr.Options {
	return ocr.Options{
		Languages:      c.Languages,
		Whitelist:      c.Whitelist,
		TessdataPrefix: c.TessdataPrefix,
		Encoding:       c.Encoding,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '+' || r == ',' }) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
