package utils

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

var (
	EnvPath string = "."
)

// Config holds the credential pair and optional overrides read from the
// environment or a .env file.
type Config struct {
	ClientID     string `mapstructure:"COINPAYMENTS_CLIENT_ID"`
	ClientSecret string `mapstructure:"COINPAYMENTS_CLIENT_SECRET"`
	BaseURL      string `mapstructure:"COINPAYMENTS_BASE_URL"`
	LogLevel     string `mapstructure:"COINPAYMENTS_LOG_LEVEL"`
}

// LoadConfig reads a Config from path. Environment variables take precedence
// over the .env file, and a missing file is not an error so CI environments
// can rely on env vars alone.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "."
	}

	// New Viper instance to avoid global state
	v := viper.New()

	v.SetEnvPrefix("")
	v.AutomaticEnv()

	// Unmarshal only sees environment values for keys viper knows about, so
	// bind each config key explicitly; otherwise env-var-only setups break.
	for _, key := range []string{
		"COINPAYMENTS_CLIENT_ID",
		"COINPAYMENTS_CLIENT_SECRET",
		"COINPAYMENTS_BASE_URL",
		"COINPAYMENTS_LOG_LEVEL",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("unable to bind %s: %w", key, err)
		}
	}

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: Unable to read config file: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.ClientID == "" || config.ClientSecret == "" {
		return fmt.Errorf("client credentials must be provided")
	}
	return nil
}

// Redact masks the secret for logging.
func (c *Config) Redact() Config {
	redacted := *c
	redacted.ClientSecret = "****"
	return redacted
}
