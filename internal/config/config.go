// Package config provides typed access to the viper-backed configuration.
// Defaults live in internal/cmd (setDefaults); environment variables use the
// UNITUNE_ prefix.
package config

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Server      ServerConfig    `mapstructure:"server"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Upstream    UpstreamConfig  `mapstructure:"upstream"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	Cache       CacheConfig     `mapstructure:"cache"`
	Logging     LoggingConfig   `mapstructure:"logging"`
	Donations   DonationsConfig `mapstructure:"donations"`
	Site        SiteConfig      `mapstructure:"site"`
	Environment string          `mapstructure:"environment"`
	Debug       bool            `mapstructure:"debug"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig contains the key-value store connection settings. Leaving
// Addr empty runs the server without a store: the rate limiter fails open
// and every metadata lookup goes upstream.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// UpstreamConfig contains the metadata API endpoints.
type UpstreamConfig struct {
	SongURL     string        `mapstructure:"song_url"`
	PlaylistURL string        `mapstructure:"playlist_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig contains token-bucket parameters.
type RateLimitConfig struct {
	MaxTokens  float64       `mapstructure:"max_tokens"`
	RefillRate float64       `mapstructure:"refill_rate"`
	Window     time.Duration `mapstructure:"window"`
}

// CacheConfig contains the metadata cache TTL.
type CacheConfig struct {
	MetadataTTL time.Duration `mapstructure:"metadata_ttl"`
}

// LoggingConfig contains the log level (trace through error).
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// DonationsConfig backs the static /api/donations endpoint.
type DonationsConfig struct {
	Enabled  bool    `mapstructure:"enabled"`
	Goal     float64 `mapstructure:"goal"`
	Raised   float64 `mapstructure:"raised"`
	Currency string  `mapstructure:"currency"`
}

// SiteConfig contains the public-facing identity of the deployment.
type SiteConfig struct {
	URL string `mapstructure:"url"`
}

// Load decodes the current viper state into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	decode := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := viper.Unmarshal(cfg, decode); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
