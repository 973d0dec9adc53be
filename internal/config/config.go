package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backends
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds the server settings read from the environment
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY"`
	Debug     bool   `env:"DEBUG"`
	PublicURL string `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`

	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`
	RoomIdleTTL     time.Duration `env:"ROOM_IDLE_TTL" envDefault:"1h"`

	StoreBackend string `env:"STORE_BACKEND" envDefault:"memory"`
	RedisURL     string `env:"REDIS_URL"`
	DatabaseURL  string `env:"DATABASE_URL"`

	CORSOrigins    []string `env:"CORS_ORIGINS" envSeparator:","`
	RateLimitRPS   float64  `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int      `env:"RATE_LIMIT_BURST" envDefault:"20"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads .env.local, then .env, then the process environment. Missing
// dotenv files are not an error, and variables already set win.
func Load() (Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StoreBackend {
	case BackendMemory:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis store")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if c.CleanupInterval <= 0 || c.RoomIdleTTL <= 0 {
		return fmt.Errorf("CLEANUP_INTERVAL and ROOM_IDLE_TTL must be positive")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit must be positive")
	}
	return nil
}

// Addr is the listen address
func (c Config) Addr() string {
	return ":" + c.Port
}
