// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads an optional .env file, then reads server, fetch, ranking, logging and LLM settings

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Fetch controls how feed documents are retrieved
	Fetch FetchConfig

	// Ranking bounds the ranked result set
	Ranking RankingConfig

	// Logging selects log level, format and file output
	Logging LoggingConfig

	// RateLimit throttles API clients
	RateLimit RateLimitConfig

	// LLM configures the analysis model
	LLM LLMConfig

	// Data points to optional lexicon and source registry files
	Data DataConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RequestTimeout bounds a whole API request, ranking included
	RequestTimeout time.Duration

	// CORSOrigins lists allowed browser origins
	CORSOrigins []string
}

// FetchConfig holds feed retrieval settings
type FetchConfig struct {
	// Timeout bounds a single feed request
	Timeout time.Duration

	// Attempts is the number of tries per feed; 1 means no retry
	Attempts int

	// RelayURL optionally prefixes the escaped feed URL
	RelayURL string

	// MaxBodyBytes caps a feed document
	MaxBodyBytes int64

	// UserAgent is sent with every feed request
	UserAgent string
}

// RankingConfig holds ranking limits
type RankingConfig struct {
	MaxResults     int
	MaxAgeDays     int
	MaxConcurrency int
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// RateLimitConfig holds per-client API limits
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// LLMConfig holds analysis model settings
type LLMConfig struct {
	// APIKey enables the analysis endpoints when set
	APIKey string

	// Model is the Gemini model name
	Model string

	// Timeout bounds one model call
	Timeout time.Duration
}

// DataConfig holds paths of optional data files
type DataConfig struct {
	// LexiconPath replaces the embedded French lexicon
	LexiconPath string

	// SourcesPath replaces the built-in source registry
	SourcesPath string
}

// LoadDotEnv loads variables from the given .env files without overriding
// the process environment. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			RequestTimeout: getEnvAsDurationOrDefault("REQUEST_TIMEOUT", 45*time.Second),
			CORSOrigins:    getEnvAsListOrDefault("CORS_ORIGINS", []string{"*"}),
		},
		Fetch: FetchConfig{
			Timeout:      getEnvAsDurationOrDefault("FETCH_TIMEOUT", 15*time.Second),
			Attempts:     getEnvAsIntOrDefault("FETCH_ATTEMPTS", 1),
			RelayURL:     getEnvOrDefault("FEED_RELAY_URL", ""),
			MaxBodyBytes: int64(getEnvAsIntOrDefault("FETCH_MAX_BODY_BYTES", 5<<20)),
			UserAgent:    getEnvOrDefault("FETCH_USER_AGENT", ""),
		},
		Ranking: RankingConfig{
			MaxResults:     getEnvAsIntOrDefault("RANK_MAX_RESULTS", 5),
			MaxAgeDays:     getEnvAsIntOrDefault("RANK_MAX_AGE_DAYS", 90),
			MaxConcurrency: getEnvAsIntOrDefault("RANK_MAX_CONCURRENCY", 10),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloatOrDefault("RATE_LIMIT_RPS", 2),
			Burst:             getEnvAsIntOrDefault("RATE_LIMIT_BURST", 5),
		},
		LLM: LLMConfig{
			APIKey:  getEnvOrDefault("GEMINI_API_KEY", ""),
			Model:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout: getEnvAsDurationOrDefault("LLM_TIMEOUT", 60*time.Second),
		},
		Data: DataConfig{
			LexiconPath: getEnvOrDefault("LEXICON_PATH", ""),
			SourcesPath: getEnvOrDefault("SOURCES_PATH", ""),
		},
	}

	return cfg, nil
}

// MaxAge returns the ranking cutoff as a duration
func (r RankingConfig) MaxAge() time.Duration {
	return time.Duration(r.MaxAgeDays) * 24 * time.Hour
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("15s") or plain seconds ("15")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var list []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	if c.Fetch.Attempts < 1 {
		return errors.New("fetch attempts must be at least 1")
	}

	if c.Fetch.RelayURL != "" && !strings.HasPrefix(c.Fetch.RelayURL, "http://") && !strings.HasPrefix(c.Fetch.RelayURL, "https://") {
		return errors.New("feed relay URL must be http or https")
	}

	if c.Ranking.MaxResults < 1 {
		return errors.New("max results must be at least 1")
	}

	if c.Ranking.MaxAgeDays < 1 {
		return errors.New("max age must be at least 1 day")
	}

	if c.Ranking.MaxConcurrency < 1 {
		return errors.New("max concurrency must be at least 1")
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1 {
		return errors.New("rate limit must allow at least one request")
	}

	return nil
}
