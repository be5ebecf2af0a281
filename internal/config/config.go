package config

import "github.com/kelseyhightower/envconfig"

// Config holds everything the API server reads from the environment.
// Values come from POS_-prefixed variables (or the bare name as a fallback),
// usually loaded from a .env file by main.
type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// DatabaseDSN is the MySQL DSN for the durable store. When empty the
	// server falls back to the in-memory store (useful for local demos).
	DatabaseDSN    string `envconfig:"DB_DSN"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"./internal/store/migrations"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"dev-only-secret-change-me"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("pos", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
