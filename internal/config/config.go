// Package config collects the gateway's runtime configuration from the
// environment once at startup. The resulting Config is read-only for the
// lifetime of the process.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultGenAIBaseURL = "https://api.openai.com/v1"
	defaultGenAIModel   = "gpt-4"
)

type Config struct {
	CatalogBaseURL string
	CatalogAPIKey  string
	CatalogTimeout time.Duration

	GenAIBaseURL string
	GenAIAPIKey  string
	GenAIModel   string
	GenAITimeout time.Duration

	ReadRPS        int
	MaxBodyBytes   int64
	AllowedOrigins []string
}

// Load collects configuration from viper-bound environment variables,
// applying defaults for everything that is not security sensitive.
func Load() Config {
	cfg := Config{
		CatalogBaseURL: viper.GetString("CATALOG_BASE_URL"),
		CatalogAPIKey:  viper.GetString("CATALOG_API_KEY"),
		CatalogTimeout: durationOrDefault("CATALOG_TIMEOUT_SECONDS", 10*time.Second),
		GenAIBaseURL:   viper.GetString("GENAI_BASE_URL"),
		GenAIAPIKey:    viper.GetString("GENAI_API_KEY"),
		GenAIModel:     viper.GetString("GENAI_MODEL"),
		GenAITimeout:   durationOrDefault("GENAI_TIMEOUT_SECONDS", 60*time.Second),
		ReadRPS:        viper.GetInt("RATE_LIMIT_READ_RPS"),
		MaxBodyBytes:   viper.GetInt64("MAX_REQUEST_BODY_BYTES"),
		AllowedOrigins: ParseAllowedOrigins(viper.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.GenAIBaseURL == "" {
		cfg.GenAIBaseURL = defaultGenAIBaseURL
	}
	if cfg.GenAIModel == "" {
		cfg.GenAIModel = defaultGenAIModel
	}
	if cfg.ReadRPS == 0 {
		cfg.ReadRPS = 100
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = 1048576
	}

	return cfg
}

// Validate reports the first missing required value. Required values have no
// defaults on purpose: starting without upstream credentials would turn every
// request into an upstream failure.
func (c Config) Validate() error {
	switch {
	case c.CatalogBaseURL == "":
		return fmt.Errorf("CATALOG_BASE_URL is required")
	case c.CatalogAPIKey == "":
		return fmt.Errorf("CATALOG_API_KEY is required")
	case c.GenAIAPIKey == "":
		return fmt.Errorf("GENAI_API_KEY is required")
	}
	return nil
}

func ParseAllowedOrigins(originsStr string) []string {
	if originsStr == "" {
		return []string{"http://localhost:5173"}
	}
	origins := strings.Split(originsStr, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	if secs := viper.GetInt(key); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}
