package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	ProjectID      string        `toml:"project_id"`
	Region         string        `toml:"region"`
	LogLevel       string        `toml:"log_level"`
	ListenAddr     string        `toml:"listen_addr"`
	KMSKeyName     string        `toml:"kms_key_name"`
	NATSURL        string        `toml:"nats_url"`
	StatePath      string        `toml:"state_path"`
	RequestTimeout time.Duration `toml:"-"`

	// RequestTimeoutSeconds is the TOML-facing form of RequestTimeout.
	RequestTimeoutSeconds int `toml:"request_timeout_seconds"`
}

func New() (*Config, error) {
	cfg := &Config{
		ProjectID:  os.Getenv("PROJECTID"),
		Region:     os.Getenv("REGION"),
		LogLevel:   os.Getenv("LOGLEVEL"),
		ListenAddr: getEnvDefault("LISTENADDR", ":8080"),
		KMSKeyName: os.Getenv("KMSKEYNAME"),
		NATSURL:    os.Getenv("NATSURL"),
		StatePath:  getEnvDefault("STATEPATH", "timebank-state.db"),
	}

	// An on-disk TOML file overrides env values when CONFIGFILE is set.
	if path := os.Getenv("CONFIGFILE"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.RequestTimeout = 15 * time.Second
	if cfg.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	}

	return cfg, nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
