package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
	Order OrderConfig
}

type AuthConfig struct {
	AccessSecret  string        `env:"ACCESS_TOKEN_SECRET"`
	RefreshSecret string        `env:"REFRESH_TOKEN_SECRET"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_TTL,   default=1h"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_TTL,  default=168h"`

	LoginWindow      time.Duration `env:"LOGIN_RATE_WINDOW,       default=15m"`
	LoginMaxAttempts int           `env:"LOGIN_RATE_MAX_ATTEMPTS, default=5"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type OrderConfig struct {
	// WhatsAppNumber receives the order confirmation deep link.
	WhatsAppNumber string `env:"ORDER_WHATSAPP_NUMBER, default=+243902456765"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsProduction reports whether the service runs with production settings,
// which among other things turns on the Secure flag of the refresh cookie.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
