package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSecret(t *testing.T, dir, key, value string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, key), []byte(value), 0o600))
}

func TestLoadWithDefaults(t *testing.T) {
	cfg := LoadWith() // no providers at all

	assert.Empty(t, cfg.YouTubeAPIKey)
	assert.Equal(t, "KR", cfg.Region)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestSecretsBeforeEnv(t *testing.T) {
	dir := t.TempDir()
	writeSecret(t, dir, "YOUTUBE_API_KEY", "from-secrets\n")
	t.Setenv("YOUTUBE_API_KEY", "from-env")
	t.Setenv("REGION_CODE", "us")

	cfg := LoadWith(SecretsDir(dir), Env())

	assert.Equal(t, "from-secrets", cfg.YouTubeAPIKey, "secrets store wins over environment")
	assert.Equal(t, "US", cfg.Region, "env fills keys the secrets store lacks, uppercased")
}

func TestEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "key123")
	t.Setenv("REGION_CODE", "")

	cfg := LoadWith(SecretsDir(t.TempDir()), Env())

	assert.Equal(t, "key123", cfg.YouTubeAPIKey)
	assert.Equal(t, "KR", cfg.Region)
}

func TestWhitespaceValueCountsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	writeSecret(t, dir, "REGION_CODE", "  \n")
	t.Setenv("REGION_CODE", "jp")

	cfg := LoadWith(SecretsDir(dir), Env())

	assert.Equal(t, "JP", cfg.Region)
}

func TestHTTPTimeoutParsing(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"valid", "30", 30 * time.Second},
		{"non-numeric falls back", "abc", 15 * time.Second},
		{"non-positive falls back", "0", 15 * time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HTTP_TIMEOUT", tc.value)
			cfg := LoadWith(Env())
			assert.Equal(t, tc.want, cfg.HTTPTimeout)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg.YouTubeAPIKey = "key123"
	assert.NoError(t, cfg.Validate())
}
