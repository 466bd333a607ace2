// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. RAIFFEISEN_LOG_LEVEL.
const EnvPrefix = "RAIFFEISEN"

// LogConfig selects level and formatter of the logrus backend.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// PluginConfig carries the Raiffeisen plugin settings.
type PluginConfig struct {
	Charset    string `mapstructure:"charset" yaml:"charset"`
	Account    string `mapstructure:"account" yaml:"account"`
	Bank       string `mapstructure:"bank" yaml:"bank"`
	IDScheme   string `mapstructure:"id_scheme" yaml:"id_scheme"`
	LayoutFile string `mapstructure:"layout_file" yaml:"layout_file"`
}

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Plugin PluginConfig `mapstructure:"plugin" yaml:"plugin"`
}

// InitializeConfig loads defaults, then config.yaml (or configFile when
// given), then RAIFFEISEN_* environment variables.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.raiffeisen-csv")
		v.AddConfigPath(".raiffeisen-csv")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file. Only an explicitly requested file must exist.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// Unmarshalling plain defaults into Config cannot fail.
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Plugin defaults
	v.SetDefault("plugin.charset", "utf-8-sig")
	v.SetDefault("plugin.account", "default")
	v.SetDefault("plugin.bank", "Raiffeisen")
	v.SetDefault("plugin.id_scheme", "sha256")
	v.SetDefault("plugin.layout_file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Plugin.Charset) == "" {
		return fmt.Errorf("plugin.charset cannot be empty")
	}

	switch config.Plugin.IDScheme {
	case "sha256", "uuid":
	default:
		return fmt.Errorf("invalid plugin.id_scheme: %s (must be 'sha256' or 'uuid')", config.Plugin.IDScheme)
	}

	if strings.TrimSpace(config.Plugin.Account) == "" {
		return fmt.Errorf("plugin.account cannot be empty")
	}

	return nil
}
