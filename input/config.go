package input

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const (
	// SessionEnv names the variable holding the adventofcode.com session cookie
	SessionEnv = "AOC_SESSION"
	// CacheEnv names the variable overriding the cache location
	CacheEnv = "AOC_CACHE"
)

// Config represents puzzle input retrieval settings
type Config struct {
	Session           string `yaml:"session,omitempty"`
	CacheURL          string `yaml:"cacheURL,omitempty"`
	BaseURL           string `yaml:"baseURL,omitempty"`
	RequestsPerMinute int    `yaml:"requestsPerMinute,omitempty"`
	UserAgent         string `yaml:"userAgent,omitempty"`
}

// DefaultConfig returns config with the user cache directory and the public site
func DefaultConfig() *Config {
	cacheURL := ".aoc"
	if dir, err := os.UserCacheDir(); err == nil {
		cacheURL = filepath.Join(dir, "aoc")
	}
	return &Config{
		CacheURL:          cacheURL,
		BaseURL:           "https://adventofcode.com",
		RequestsPerMinute: 10,
		UserAgent:         "github.com/viant/aoc",
	}
}

// LoadConfig reads YAML config from URL on top of the defaults, then applies environment overrides.
// An empty URL skips the file.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	config := DefaultConfig()
	if URL != "" {
		fs := afs.New()
		data, err := fs.DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
		}
		if err = yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
		}
	}
	config.applyEnv()
	return config, config.Validate()
}

func (c *Config) applyEnv() {
	if session := os.Getenv(SessionEnv); session != "" {
		c.Session = session
	}
	if cache := os.Getenv(CacheEnv); cache != "" {
		c.CacheURL = cache
	}
}

// Validate checks settings required regardless of whether a download happens
func (c *Config) Validate() error {
	if c.CacheURL == "" {
		return fmt.Errorf("cacheURL was empty")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("baseURL was empty")
	}
	if c.RequestsPerMinute <= 0 {
		return fmt.Errorf("invalid requestsPerMinute: %v", c.RequestsPerMinute)
	}
	return nil
}
