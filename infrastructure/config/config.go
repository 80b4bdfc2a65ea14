package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServerURL = "http://localhost:4444/wd/hub"
	DefaultBrowser   = "chrome"
	DefaultTimeout   = 60 * time.Second
)

// Config holds runtime settings read from the environment.
type Config struct {
	ServerURL      string
	BrowserName    string
	RequestTimeout time.Duration
	LogLevel       logrus.Level
	StateDir       string
	MetricsAddr    string
}

// Load - reads an optional .env file, then the environment
func Load() (*Config, error) {
	// .env file is optional
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv - builds a Config from a lookup function, applying defaults
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		ServerURL:      DefaultServerURL,
		BrowserName:    DefaultBrowser,
		RequestTimeout: DefaultTimeout,
		LogLevel:       logrus.InfoLevel,
		MetricsAddr:    getenv("WEBDRILL_METRICS_ADDR"),
	}

	if v := getenv("WEBDRIVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := getenv("WEBDRIVER_BROWSER"); v != "" {
		cfg.BrowserName = v
	}
	if v := getenv("WEBDRIVER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WEBDRIVER_TIMEOUT %q: %w", v, err)
		}
		cfg.RequestTimeout = d
	}
	if v := getenv("WEBDRILL_LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WEBDRILL_LOG_LEVEL %q: %w", v, err)
		}
		cfg.LogLevel = level
	}

	cfg.StateDir = getenv("WEBDRILL_STATE_DIR")
	if cfg.StateDir == "" {
		homeDir := getenv("HOME")
		if homeDir == "" {
			return nil, fmt.Errorf("HOME environment variable is not set")
		}
		cfg.StateDir = filepath.Join(homeDir, ".webdrill")
	}

	return cfg, nil
}

// NewLogger - creates the logger used across the application
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(c.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}
