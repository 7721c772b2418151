package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultQuranAPIBaseURL  = "https://api.alquran.cloud/v1"
	defaultGeminiAPIBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel      = "gemini-2.5-flash"
	defaultDBPath           = "noor.db"
	defaultLogLevel         = "info"
)

// Config holds runtime settings for the reader.
type Config struct {
	QuranAPIBaseURL  string `yaml:"quran_api_base_url"`
	GeminiAPIBaseURL string `yaml:"gemini_api_base_url"`
	GeminiModel      string `yaml:"gemini_model"`
	GeminiAPIKey     string `yaml:"gemini_api_key"`
	DBPath           string `yaml:"db_path"`
	LogFile          string `yaml:"log_file"`
	LogLevel         string `yaml:"log_level"`
}

func Defaults() Config {
	return Config{
		QuranAPIBaseURL:  defaultQuranAPIBaseURL,
		GeminiAPIBaseURL: defaultGeminiAPIBaseURL,
		GeminiModel:      defaultGeminiModel,
		DBPath:           defaultDBPath,
		LogFile:          defaultLogFile(),
		LogLevel:         defaultLogLevel,
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (or NOOR_CONFIG when path is empty), then environment variables. A .env
// file in the working directory is read first when present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Defaults()

	if path == "" {
		path = os.Getenv("NOOR_CONFIG")
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.mergeEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	overlay(&c.QuranAPIBaseURL, file.QuranAPIBaseURL)
	overlay(&c.GeminiAPIBaseURL, file.GeminiAPIBaseURL)
	overlay(&c.GeminiModel, file.GeminiModel)
	overlay(&c.GeminiAPIKey, file.GeminiAPIKey)
	overlay(&c.DBPath, file.DBPath)
	overlay(&c.LogFile, file.LogFile)
	overlay(&c.LogLevel, file.LogLevel)
	return nil
}

func (c *Config) mergeEnv() {
	overlay(&c.QuranAPIBaseURL, os.Getenv("NOOR_QURAN_API_BASE_URL"))
	overlay(&c.GeminiAPIBaseURL, os.Getenv("NOOR_GEMINI_API_BASE_URL"))
	overlay(&c.GeminiModel, os.Getenv("NOOR_GEMINI_MODEL"))
	overlay(&c.GeminiAPIKey, firstNonEmpty(
		os.Getenv("NOOR_GEMINI_API_KEY"),
		os.Getenv("GEMINI_API_KEY"),
		os.Getenv("API_KEY"),
	))
	overlay(&c.DBPath, os.Getenv("NOOR_DB_PATH"))
	overlay(&c.LogFile, os.Getenv("NOOR_LOG_FILE"))
	overlay(&c.LogLevel, os.Getenv("NOOR_LOG_LEVEL"))
}

func (c Config) Validate() error {
	if c.QuranAPIBaseURL == "" {
		return errors.New("QuranAPIBaseURL is required")
	}
	if c.GeminiAPIBaseURL == "" {
		return errors.New("GeminiAPIBaseURL is required")
	}
	if c.GeminiModel == "" {
		return errors.New("GeminiModel is required")
	}
	if c.DBPath == "" {
		return errors.New("DBPath is required")
	}
	if strings.HasSuffix(c.QuranAPIBaseURL, "/") {
		return fmt.Errorf("QuranAPIBaseURL must not end with '/': %s", c.QuranAPIBaseURL)
	}
	if strings.HasSuffix(c.GeminiAPIBaseURL, "/") {
		return fmt.Errorf("GeminiAPIBaseURL must not end with '/': %s", c.GeminiAPIBaseURL)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LogLevel must be debug, info, warn or error: %s", c.LogLevel)
	}
	return nil
}

// HasGeminiKey reports whether explanation features can reach the model.
func (c Config) HasGeminiKey() bool {
	return c.GeminiAPIKey != ""
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "noor.log"
	}
	return filepath.Join(dir, "noor", "noor.log")
}

func overlay(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
