package config

// Config represents the panel connection configuration
type Config struct {
	Host           string `mapstructure:"host"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	Token          string `mapstructure:"token"`
	TLSSkipVerify  bool   `mapstructure:"tls_skip_verify"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	LogLevel       string `mapstructure:"log_level"`
}
