package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "CORS_ORIGINS", "TIMEZONE", "STORAGE_DRIVER", "SQLITE_PATH",
		"DATABASE_URL", "SNAPSHOT_KEY", "S3_BUCKET", "S3_PREFIX", "ADVICE_PROVIDER",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "OPENAI_BASE_URL", "ADVICE_TIMEOUT",
		"ADVICE_RATE_PER_MINUTE", "ADVICE_BURST", "CURRENCY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, StorageSQLite, cfg.StorageDriver)
	assert.Equal(t, "wealthflow_data", cfg.SnapshotKey)
	assert.Equal(t, AdviceNone, cfg.Advice.Provider)
	assert.Equal(t, 30*time.Second, cfg.Advice.Timeout)
	assert.Equal(t, 6, cfg.Advice.RatePerMinute)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoad_PostgresRequiresDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/wealthflow")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
}

func TestLoad_GeminiRequiresKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADVICE_PROVIDER", "gemini")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoad_OpenAIAcceptsBaseURLWithoutKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADVICE_PROVIDER", "openai")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Advice.OpenAIBaseURL)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown driver", "STORAGE_DRIVER", "redis"},
		{"unknown provider", "ADVICE_PROVIDER", "cohere"},
		{"bad timezone", "TIMEZONE", "Mars/Olympus"},
		{"bad timeout", "ADVICE_TIMEOUT", "soon"},
		{"zero timeout", "ADVICE_TIMEOUT", "0s"},
		{"bad rate", "ADVICE_RATE_PER_MINUTE", "many"},
		{"negative burst", "ADVICE_BURST", "-1"},
		{"unknown currency", "CURRENCY", "XXQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
