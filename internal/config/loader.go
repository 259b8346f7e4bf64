package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	defaultConfigPath = "./config.yaml"
	defaultDotenvPath = ".env"
)

// Load builds the Config. Precedence is ENV over YAML over env-default tags.
//
// A dotenv file (DOTENV_PATH, default ".env") is read into the environment
// first without overriding variables that are already set. The YAML file
// comes from CONFIG_PATH (default "./config.yaml"); a missing default file
// means ENV only, a missing explicit one is an error.
func Load() (*Config, error) {
	if err := applyDotenv(); err != nil {
		return nil, err
	}

	path, explicit := pathFromEnv("CONFIG_PATH", defaultConfigPath)

	var cfg Config
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func applyDotenv() error {
	path, explicit := pathFromEnv("DOTENV_PATH", defaultDotenvPath)

	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("config: dotenv %s: %w", path, err)
}

// pathFromEnv reports whether the path was chosen by the operator.
func pathFromEnv(key, fallback string) (string, bool) {
	if p := os.Getenv(key); p != "" {
		return p, true
	}
	return fallback, false
}
