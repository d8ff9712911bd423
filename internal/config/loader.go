package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"xui-panel-client/internal/constants"
)

// Load loads the panel connection configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()

	// Set default values
	v.SetDefault("XUI_TIMEOUT_SECONDS", constants.DefaultTimeout)
	v.SetDefault("XUI_LOG_LEVEL", "info")

	// Define environment variables
	v.BindEnv("XUI_HOST")
	v.BindEnv("XUI_USERNAME")
	v.BindEnv("XUI_PASSWORD")
	v.BindEnv("XUI_TOKEN")
	v.BindEnv("XUI_TLS_SKIP_VERIFY")
	v.BindEnv("XUI_TIMEOUT_SECONDS")
	v.BindEnv("XUI_LOG_LEVEL")

	cfg := &Config{
		Host:           strings.TrimRight(strings.TrimSpace(v.GetString("XUI_HOST")), "/"),
		Username:       strings.TrimSpace(v.GetString("XUI_USERNAME")),
		Password:       strings.TrimSpace(v.GetString("XUI_PASSWORD")),
		Token:          strings.TrimSpace(v.GetString("XUI_TOKEN")),
		TLSSkipVerify:  v.GetBool("XUI_TLS_SKIP_VERIFY"),
		TimeoutSeconds: v.GetInt("XUI_TIMEOUT_SECONDS"),
		LogLevel:       v.GetString("XUI_LOG_LEVEL"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Host == "" {
		return errors.New("XUI_HOST is required")
	}
	if cfg.Username == "" {
		return errors.New("XUI_USERNAME is required")
	}
	if cfg.Password == "" {
		return errors.New("XUI_PASSWORD is required")
	}
	if cfg.TimeoutSeconds <= 0 {
		return errors.New("XUI_TIMEOUT_SECONDS must be positive")
	}
	return nil
}
