package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`

	// AccessTokenTTL bounds the window an access token proves identity for;
	// RefreshTokenTTL bounds how long a refresh token stays exchangeable.
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL,  default=15m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL, default=168h"`

	// AuditWorkers sizes the async audit persistence pool.
	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=identity_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
