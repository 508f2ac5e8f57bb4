package config

import (
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	Port                string `env:"PORT" envDefault:"8080"`
	ReadTimeoutSeconds  int    `env:"READ_TIMEOUT_SECONDS" envDefault:"180"`
	WriteTimeoutSeconds int    `env:"WRITE_TIMEOUT_SECONDS" envDefault:"180"`
	IdleTimeoutSeconds  int    `env:"IDLE_TIMEOUT_SECONDS" envDefault:"180"`

	AcceptedOrigins []string `env:"ACCEPTED_ORIGINS" envSeparator:"," envDefault:"*"`
	BaseURL         string   `env:"BASE_URL" envDefault:"http://localhost:8080"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // json | console

	ReadingWPM   int `env:"READING_WPM" envDefault:"200"`
	RelatedLimit int `env:"RELATED_LIMIT" envDefault:"2"`
	PreviewLimit int `env:"PREVIEW_LIMIT" envDefault:"3"`

	// Cache configuration
	RedisURL    string        `env:"REDIS_URL"` // Optional, memory cache when empty
	CachePrefix string        `env:"CACHE_PREFIX" envDefault:"portfolio:"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"1h"`

	// Contact form
	ContactSendDelay     time.Duration `env:"CONTACT_SEND_DELAY" envDefault:"1500ms"`
	ContactRatePerMinute int           `env:"CONTACT_RATE_PER_MINUTE" envDefault:"5"`

	// Proxies whose X-Forwarded-For is believed, as CIDRs or bare IPs.
	// Empty means clients are keyed by their connection address.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

var validLogFormats = []string{"json", "console"}

func (c Config) Address() string {
	return fmt.Sprintf("0.0.0.0:%s", c.Port) // Bind to 0.0.0.0 for external access
}

func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSeconds) * time.Second
}

func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// Level parses LogLevel, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (c Config) Validate() error {
	if c.ReadingWPM <= 0 {
		return fmt.Errorf("READING_WPM must be positive, got %d", c.ReadingWPM)
	}
	if c.RelatedLimit < 0 {
		return fmt.Errorf("RELATED_LIMIT must not be negative, got %d", c.RelatedLimit)
	}
	if c.PreviewLimit < 0 {
		return fmt.Errorf("PREVIEW_LIMIT must not be negative, got %d", c.PreviewLimit)
	}
	if c.ContactRatePerMinute <= 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE must be positive, got %d", c.ContactRatePerMinute)
	}
	if _, err := c.TrustedProxyPrefixes(); err != nil {
		return err
	}
	known := false
	for _, f := range validLogFormats {
		if c.LogFormat == f {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("invalid LOG_FORMAT %q: must be one of %v", c.LogFormat, validLogFormats)
	}
	return nil
}

// TrustedProxyPrefixes parses TrustedProxies. A bare IP becomes a
// single-address prefix.
func (c Config) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.TrustedProxies))
	for _, raw := range c.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			p, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q: %w", raw, err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q: %w", raw, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// LoadDotEnv loads variables from .env files into the process environment.
// Variables already set are left untouched.
func LoadDotEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
