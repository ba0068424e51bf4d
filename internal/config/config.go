// Package config loads service configuration from the environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the service needs at startup.
type Config struct {
	ListenAddr     string `mapstructure:"listen_addr"`
	MaxUploadBytes int    `mapstructure:"max_upload_bytes"`
	LogLevel       string `mapstructure:"log_level"`
}

// Load reads configuration with precedence: environment (STMT_ prefix),
// then statement-engine.yaml in the working directory, then defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("max_upload_bytes", 16<<20)
	v.SetDefault("log_level", "info")

	v.SetConfigName("statement-engine")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("STMT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
