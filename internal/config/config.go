// Package config loads service configuration from the environment.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the full service configuration.
type Config struct {
	App       AppConfig
	Auth      AuthConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// AppConfig covers the HTTP listener and logging.
type AppConfig struct {
	ListenAddr  string
	Env         string
	LogLevel    string
	CORSOrigins []string
}

// AuthConfig covers session token issuance.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// DatabaseConfig covers the optional postgres store. An empty DSN selects
// the in-memory store.
type DatabaseConfig struct {
	DSN string
}

// RedisConfig covers the optional read cache. An empty address disables it.
type RedisConfig struct {
	Addr     string
	DB       int
	CacheTTL time.Duration
}

// RateLimitConfig covers per-client request limiting.
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

// Load reads configuration from environment variables, applying local
// development defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EXPLORER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origins", "http://localhost:3000")
	v.SetDefault("jwt_secret", "dev-secret-change-me")
	v.SetDefault("token_ttl", "24h")
	v.SetDefault("database_dsn", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cache_ttl", "5s")
	v.SetDefault("rate_limit_rps", 50)
	v.SetDefault("rate_limit_burst", 100)

	tokenTTL, err := time.ParseDuration(v.GetString("token_ttl"))
	if err != nil {
		return nil, err
	}
	cacheTTL, err := time.ParseDuration(v.GetString("cache_ttl"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			ListenAddr:  v.GetString("listen_addr"),
			Env:         v.GetString("env"),
			LogLevel:    v.GetString("log_level"),
			CORSOrigins: splitOrigins(v.GetString("cors_origins")),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("jwt_secret"),
			TokenTTL:  tokenTTL,
		},
		Database: DatabaseConfig{
			DSN: v.GetString("database_dsn"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis_addr"),
			DB:       v.GetInt("redis_db"),
			CacheTTL: cacheTTL,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetInt("rate_limit_rps"),
			Burst:             v.GetInt("rate_limit_burst"),
		},
	}
	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
