// Package config holds the shell's compiled-in settings and their optional
// overrides from a JSON file and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const (
	ProductName = "Google Gemini"
	BundleID    = "com.google.gemini.desktop"
	DefaultURL  = "https://gemini.google.com/app"

	EnvConfigPath = "GEMINI_DESKTOP_CONFIG"
	EnvURL        = "GEMINI_DESKTOP_URL"
	EnvLogLevel   = "GEMINI_DESKTOP_LOG_LEVEL"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	ProductName string
	BundleID    string
	URL         string
	Width       int
	Height      int
	MinWidth    int
	MinHeight   int
	// ShowDelay is how long the startup hook waits before showing the main window.
	// It is fixed at 50ms; the config file cannot change it.
	ShowDelay time.Duration
	LogLevel  string
}

// fileConfig is the on-disk shape. Pointer fields distinguish "absent" from zero.
type fileConfig struct {
	URL         *string `json:"url"`
	Width       *int    `json:"width"`
	Height      *int    `json:"height"`
	MinWidth    *int    `json:"minWidth"`
	MinHeight   *int    `json:"minHeight"`
	LogLevel    *string `json:"logLevel"`
}

// Default returns the compiled-in settings.
func Default() Config {
	return Config{
		ProductName: ProductName,
		BundleID:    BundleID,
		URL:         DefaultURL,
		Width:       1200,
		Height:      800,
		MinWidth:    480,
		MinHeight:   360,
		ShowDelay:   50 * time.Millisecond,
		LogLevel:    "info",
	}
}

// DefaultPath returns <UserConfigDir>/gemini-desktop/config.json, or "" when the
// user config dir cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gemini-desktop", "config.json")
}

// Load resolves the config: environment > file > defaults. A missing file is not an
// error; a malformed one is.
func Load() (Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
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
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := sonic.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.URL != nil {
		c.URL = *fc.URL
	}
	if fc.Width != nil {
		c.Width = *fc.Width
	}
	if fc.Height != nil {
		c.Height = *fc.Height
	}
	if fc.MinWidth != nil {
		c.MinWidth = *fc.MinWidth
	}
	if fc.MinHeight != nil {
		c.MinHeight = *fc.MinHeight
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	return nil
}

func (c *Config) mergeEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvURL)); v != "" {
		c.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

// Validate reports the first setting that cannot drive a window, wrapped in
// ErrInvalid.
func (c Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("%w: url %q must be an absolute http(s) URL", ErrInvalid, c.URL)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.MinWidth < 0 || c.MinHeight < 0 || c.MinWidth > c.Width || c.MinHeight > c.Height {
		return fmt.Errorf("%w: minimum size %dx%d exceeds %dx%d", ErrInvalid, c.MinWidth, c.MinHeight, c.Width, c.Height)
	}
	if c.ShowDelay < 0 {
		return fmt.Errorf("%w: negative show delay %s", ErrInvalid, c.ShowDelay)
	}
	return nil
}
