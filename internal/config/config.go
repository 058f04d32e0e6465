package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	ErrMissingAPIKey = errors.New("Gemini API key is required")
)

const (
	defaultPort           = "5000"
	defaultModel          = "gemini-2.0-flash-exp"
	defaultRequestTimeout = 15 * time.Second
)

// Config holds the application configuration
type Config struct {
	GeminiAPIKey   string
	GeminiModel    string
	Port           string
	RequestTimeout time.Duration
	LogDir         string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Get Gemini API key from environment
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	// Outbound calls get a bounded timeout; expiry is treated like any other
	// call failure.
	timeout := defaultRequestTimeout
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %v", err)
		}
		timeout = parsed
	}

	return &Config{
		GeminiAPIKey:   apiKey,
		GeminiModel:    model,
		Port:           port,
		RequestTimeout: timeout,
		LogDir:         os.Getenv("LOG_DIR"),
	}, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	return nil
}
