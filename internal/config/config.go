package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration. Values load from an
// optional YAML file and individual environment variables override the
// file, so container deployments can skip the file entirely.
type Config struct {
	// Port is the HTTP listen port.
	Port string `yaml:"port"`

	// DatabaseURL is the Postgres connection string.
	DatabaseURL string `yaml:"database_url"`

	// JWTSecret signs access tokens.
	JWTSecret string `yaml:"jwt_secret"`

	// JWTIssuer is the iss claim on issued tokens.
	JWTIssuer string `yaml:"jwt_issuer"`

	// Timezone is the IANA timezone calendar days are computed in
	// (e.g. "Asia/Seoul").
	Timezone string `yaml:"timezone"`

	// UndoTTLMinutes is how long deleted schedules stay restorable.
	UndoTTLMinutes int `yaml:"undo_ttl_minutes"`

	// SweepCron schedules the undo-stack expiry sweep (e.g. "@every 10m").
	SweepCron string `yaml:"sweep_cron"`
}

func defaults() Config {
	return Config{
		Port:           "8080",
		JWTIssuer:      "hvlab-go",
		Timezone:       "Asia/Seoul",
		UndoTTLMinutes: 30,
		SweepCron:      "@every 10m",
	}
}

// Load reads the config file at path (skipped when missing), then applies
// environment overrides and validates required fields.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.DatabaseURL == "" {
		return cfg, errors.New("database_url (or DATABASE_URL) is required")
	}
	if cfg.JWTSecret == "" {
		return cfg, errors.New("jwt_secret (or JWT_SECRET) is required")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("JWT_ISSUER"); v != "" {
		cfg.JWTIssuer = v
	}
	if v := os.Getenv("TZ"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("UNDO_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.UndoTTLMinutes = n
		}
	}
	if v := os.Getenv("SWEEP_CRON"); v != "" {
		cfg.SweepCron = v
	}
}
