package config

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, 180*time.Second, cfg.ReadTimeout())
	assert.Equal(t, []string{"*"}, cfg.AcceptedOrigins)
	assert.Equal(t, 200, cfg.ReadingWPM)
	assert.Equal(t, 2, cfg.RelatedLimit)
	assert.Equal(t, 3, cfg.PreviewLimit)
	assert.Equal(t, 1500*time.Millisecond, cfg.ContactSendDelay)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.False(t, cfg.UseRedisCache())
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("ACCEPTED_ORIGINS", "https://example.com,https://www.example.com")
	t.Setenv("READING_WPM", "250")
	t.Setenv("RELATED_LIMIT", "4")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CONTACT_SEND_DELAY", "10ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.Address())
	assert.Equal(t, []string{"https://example.com", "https://www.example.com"}, cfg.AcceptedOrigins)
	assert.Equal(t, 250, cfg.ReadingWPM)
	assert.Equal(t, 4, cfg.RelatedLimit)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.True(t, cfg.UseRedisCache())
	assert.Equal(t, 10*time.Millisecond, cfg.ContactSendDelay)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero wpm", "READING_WPM", "0"},
		{"negative related", "RELATED_LIMIT", "-1"},
		{"negative preview", "PREVIEW_LIMIT", "-3"},
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"non numeric port timeout", "READ_TIMEOUT_SECONDS", "soon"},
		{"bad trusted proxy", "TRUSTED_PROXIES", "10.0.0.0/8,proxy.internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestTrustedProxyPrefixes(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.7 ,10.1.2.3/16")

	cfg, err := Load()
	require.NoError(t, err)

	prefixes, err := cfg.TrustedProxyPrefixes()
	require.NoError(t, err)
	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("192.168.1.7/32"),
		netip.MustParsePrefix("10.1.0.0/16"),
	}, prefixes)
}

func TestTrustedProxyPrefixes_Empty(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	prefixes, err := cfg.TrustedProxyPrefixes()
	require.NoError(t, err)
	assert.Empty(t, prefixes)
}

func TestLevel_FallsBackToInfo(t *testing.T) {
	cfg := Config{LogLevel: "chatty"}
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PREVIEW_LIMIT=6\n"), 0o600))
	t.Setenv("PREVIEW_LIMIT", "")
	require.NoError(t, os.Unsetenv("PREVIEW_LIMIT"))

	require.NoError(t, LoadDotEnv(path))
	t.Cleanup(func() { os.Unsetenv("PREVIEW_LIMIT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.PreviewLimit)
}
