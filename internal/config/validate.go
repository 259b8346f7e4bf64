package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be within [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}

	if c.RateLimit.Enabled && (c.RateLimit.AuthPerMinute <= 0 || c.RateLimit.APIPerMinute <= 0) {
		return fmt.Errorf("rate_limit: per-minute limits must be > 0 when enabled")
	}

	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	return nil
}

func (m MailConfig) validate() error {
	if !m.Enabled {
		return nil
	}
	if m.Host == "" {
		return fmt.Errorf("host is required when mail is enabled")
	}
	if m.From == "" {
		return fmt.Errorf("from is required when mail is enabled")
	}
	if m.Port <= 0 || m.Port > 65535 {
		return fmt.Errorf("port must be within [1, 65535] (got %d)", m.Port)
	}
	return nil
}
