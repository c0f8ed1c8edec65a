package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// AppConfig is the process-wide configuration, parsed once at startup.
// Business logic never reads the environment directly.
type AppConfig struct {
	Port         string        `env:"APP_PORT" envDefault:"4000"`
	MongoURI     string        `env:"MONGO_URI,required"`
	MongoDB      string        `env:"MONGO_DB" envDefault:"notification_hub"`
	JWTSecret    string        `env:"JWT_SECRET,required"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	AllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

func NewAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
