// Package config reads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrAPIURLMissing = errors.New("the API_URL environment variable must be set")

type Config struct {
	// External base URL of the API, used for links and swagger
	APIURL *url.URL

	// Path of the SQLite database file
	DBPath string

	// human or json, empty selects by gin mode
	LogFormat string

	// Gin mode, empty means release
	GinMode string

	CORSAllowOrigins []string
	EnablePprof      bool

	// Port for the HTTP server
	Port string
}

// Load reads the configuration from the environment. Values from a .env file
// in the working directory are used for variables that are not set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok || apiURL == "" {
		return nil, ErrAPIURLMissing
	}

	parsed, err := url.Parse(strings.TrimSuffix(apiURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_URL '%s': %w", apiURL, err)
	}

	cfg := &Config{
		APIURL:           parsed,
		DBPath:           getEnv("DB_PATH", "data/insights.db"),
		LogFormat:        getEnv("LOG_FORMAT", ""),
		GinMode:          getEnv("GIN_MODE", "release"),
		CORSAllowOrigins: strings.Fields(getEnv("CORS_ALLOW_ORIGINS", "")),
		EnablePprof:      getEnv("ENABLE_PPROF", "") == "true",
		Port:             getEnv("PORT", "8080"),
	}

	return cfg, cfg.Validate()
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var problems []string

	if c.APIURL.Scheme != "http" && c.APIURL.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid API_URL scheme '%s': must be 'http' or 'https'", c.APIURL.Scheme))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		problems = append(problems, fmt.Sprintf("invalid LOG_FORMAT '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
