package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting the server reads from the environment.
// A .env file in the working directory is loaded first if present.
type Config struct {
	Port        int           `envconfig:"PORT" default:"8000"`
	DatabaseURL string        `envconfig:"DB_URL" required:"true"`
	RedisURL    string        `envconfig:"REDIS_URL"`
	AllowOrigin string        `envconfig:"ALLOW_ORIGIN" default:"*"`
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"jwt_secret"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`

	AsynqConcurrency int `envconfig:"ASYNQ_CONCURRENCY" default:"10"`
}

// Load reads .env (best-effort) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
