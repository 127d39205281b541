package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	GitBinary      string        `mapstructure:"git_binary"`
	DefaultTimeout time.Duration `mapstructure:"default_timeout"`
	NetworkTimeout time.Duration `mapstructure:"network_timeout"`
	LogLevel       string        `mapstructure:"log_level"`
	LogFile        string        `mapstructure:"log_file"`
	GithubToken    string        `mapstructure:"github_token"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		GitBinary:      "git",
		DefaultTimeout: 30 * time.Second,
		NetworkTimeout: 300 * time.Second,
		LogLevel:       "info",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.GitBinary == "" {
		return fmt.Errorf("git_binary cannot be empty")
	}
	if c.DefaultTimeout <= 0 {
		return fmt.Errorf("default_timeout must be positive, got %v", c.DefaultTimeout)
	}
	if c.NetworkTimeout <= 0 {
		return fmt.Errorf("network_timeout must be positive, got %v", c.NetworkTimeout)
	}
	if c.NetworkTimeout < c.DefaultTimeout {
		return fmt.Errorf("network_timeout (%v) cannot be shorter than default_timeout (%v)",
			c.NetworkTimeout, c.DefaultTimeout)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %s (expected: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".gitmcp")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")
	// Configure environment variables
	viper.SetEnvPrefix("GITMCP")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Explicitly bind environment variables
	// BindEnv allows multiple env vars - it will check them in order
	if err := viper.BindEnv("git_binary", "GITMCP_GIT_BINARY"); err != nil {
		return nil, fmt.Errorf("failed to bind git_binary env: %w", err)
	}
	if err := viper.BindEnv("log_level", "GITMCP_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log_level env: %w", err)
	}
	if err := viper.BindEnv("log_file", "GITMCP_LOG_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind log_file env: %w", err)
	}
	if err := viper.BindEnv("github_token", "GITHUB_TOKEN", "GITMCP_GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind github_token env: %w", err)
	}
	// Set defaults
	defaults := DefaultConfig()
	viper.SetDefault("git_binary", defaults.GitBinary)
	viper.SetDefault("default_timeout", defaults.DefaultTimeout)
	viper.SetDefault("network_timeout", defaults.NetworkTimeout)
	viper.SetDefault("log_level", defaults.LogLevel)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
