package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	DatabaseURL    string   `envconfig:"database_url" required:"true"`
	JWTSecret      string   `envconfig:"jwt_secret" required:"true"`
	Port           string   `envconfig:"port" default:"8080"`
	AllowedOrigins []string `envconfig:"allowed_origins" default:"*"`
}

// NewLoadedConfig reads .env when present and resolves LEADS_* environment
// variables into a Config.
func NewLoadedConfig() (*Config, error) {
	godotenv.Load()

	var c Config
	if err := envconfig.Process("leads", &c); err != nil {
		return nil, errors.WithStack(err)
	}

	return &c, nil
}
