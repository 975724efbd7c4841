package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageS3       = "s3"
)

// Advice providers
const (
	AdviceGemini = "gemini"
	AdviceOpenAI = "openai"
	AdviceNone   = "none"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	CORSOrigins []string
	Env         string
	Timezone    string

	// Storage
	StorageDriver string
	SQLitePath    string
	DatabaseURL   string
	SnapshotKey   string
	S3            S3Config

	// Advice
	Advice AdviceConfig

	// Currency used for display
	Currency string
}

// S3Config holds AWS S3 configuration
type S3Config struct {
	Region          string
	Bucket          string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // Optional: for MinIO/LocalStack local dev
}

// AdviceConfig holds text generation settings
type AdviceConfig struct {
	Provider      string
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	Timeout       time.Duration
	RatePerMinute int
	Burst         int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("ADVICE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADVICE_TIMEOUT: %w", err)
	}
	ratePerMinute, err := getEnvInt("ADVICE_RATE_PER_MINUTE", 6)
	if err != nil {
		return nil, err
	}
	burst, err := getEnvInt("ADVICE_BURST", 2)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		CORSOrigins:   strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:           getEnv("ENV", "development"),
		Timezone:      getEnv("TIMEZONE", "UTC"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageSQLite)),
		SQLitePath:    getEnv("SQLITE_PATH", "wealthflow.db"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		SnapshotKey:   getEnv("SNAPSHOT_KEY", "wealthflow_data"),
		S3: S3Config{
			Region:          getEnv("S3_REGION", "us-east-1"),
			Bucket:          getEnv("S3_BUCKET", "wealthflow-snapshots"),
			Prefix:          getEnv("S3_PREFIX", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""), // Empty = use AWS, set for MinIO/LocalStack
		},
		Advice: AdviceConfig{
			Provider:      strings.ToLower(getEnv("ADVICE_PROVIDER", AdviceNone)),
			GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
			GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
			OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Timeout:       timeout,
			RatePerMinute: ratePerMinute,
			Burst:         burst,
		},
		Currency: strings.ToUpper(getEnv("CURRENCY", "USD")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}

	switch c.StorageDriver {
	case StorageMemory:
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
	case StorageS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.SnapshotKey == "" {
		return fmt.Errorf("SNAPSHOT_KEY must not be empty")
	}

	switch c.Advice.Provider {
	case AdviceNone:
	case AdviceGemini:
		if c.Advice.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
	case AdviceOpenAI:
		if c.Advice.OpenAIAPIKey == "" && c.Advice.OpenAIBaseURL == "" {
			return fmt.Errorf("OPENAI_API_KEY or OPENAI_BASE_URL is required")
		}
	default:
		return fmt.Errorf("unknown ADVICE_PROVIDER %q", c.Advice.Provider)
	}

	if c.Advice.Timeout <= 0 {
		return fmt.Errorf("ADVICE_TIMEOUT must be positive")
	}
	if c.Advice.RatePerMinute <= 0 || c.Advice.Burst <= 0 {
		return fmt.Errorf("ADVICE_RATE_PER_MINUTE and ADVICE_BURST must be positive")
	}
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("unknown CURRENCY %q", c.Currency)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
