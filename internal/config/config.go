package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
)

const (
	defaultRegion     = "KR"
	defaultPort       = "8080"
	defaultTimeoutSec = 15
	defaultSecretsDir = "/run/secrets"
)

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey string
	Region        string
	Port          string
	HTTPTimeout   time.Duration
}

// Provider resolves a single configuration key. An empty result means the
// provider has no value for that key and the next provider is consulted.
type Provider func(key string) string

// SecretsDir reads keys as individual files from a secrets directory,
// the way container runtimes mount secrets. Missing files are not an error.
func SecretsDir(dir string) Provider {
	if dir == "" {
		dir = defaultSecretsDir
	}
	return func(key string) string {
		data, err := os.ReadFile(filepath.Join(dir, key))
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(data))
	}
}

// Env resolves keys from environment variables. godotenv layers .env
// underneath the environment before this provider runs.
func Env() Provider {
	return func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
}

// Load loads the configuration using the default provider chain:
// secrets directory first, then environment variables.
func Load() *Config {
	return LoadWith(SecretsDir(os.Getenv("SECRETS_DIR")), Env())
}

// LoadWith loads the configuration from an ordered list of providers.
// The first provider returning a non-empty value wins.
func LoadWith(providers ...Provider) *Config {
	region := resolve(providers, "REGION_CODE", defaultRegion)

	return &Config{
		YouTubeAPIKey: resolve(providers, "YOUTUBE_API_KEY", ""),
		Region:        strings.ToUpper(region),
		Port:          resolve(providers, "PORT", defaultPort),
		HTTPTimeout:   time.Duration(resolveInt(providers, "HTTP_TIMEOUT", defaultTimeoutSec)) * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY is not set", ErrMissingAPIKey)
	}
	return nil
}

func resolve(providers []Provider, key, fallback string) string {
	for _, p := range providers {
		if v := p(key); v != "" {
			return v
		}
	}
	return fallback
}

func resolveInt(providers []Provider, key string, fallback int) int {
	v := resolve(providers, key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
