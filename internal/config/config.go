package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config carries all process configuration, resolved from the environment
// with optional .env overrides for local development.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	Database Database
	Auth     Auth
}

// Database holds PostgreSQL connection settings.
type Database struct {
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port        string `env:"POSTGRES_PORT" envDefault:"5432"`
	User        string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password    string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	Name        string `env:"POSTGRES_DB" envDefault:"contacts"`
	SSLMode     string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxIdle     int    `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"10"`
	MaxOpen     int    `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"50"`
	MaxIdleTime int    `env:"POSTGRES_CONN_MAX_IDLE_MINUTES" envDefault:"5"`
	MaxLifetime int    `env:"POSTGRES_CONN_MAX_LIFE_MINUTES" envDefault:"60"`
}

// Auth holds settings for the bearer-token verifier.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET" envDefault:""`
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; a missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// DSN renders the PostgreSQL connection string.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}
