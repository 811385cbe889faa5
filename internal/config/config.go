package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mohitmishra786/low-level-dev-skills/internal/plan"
)

// Config controls how install commands are rendered. Everything has a
// working default; the config file is optional.
type Config struct {
	// Source is the <org>/<repo> slug passed to the installer.
	Source string `mapstructure:"source"`
	// Installer is the command prefix of rendered install commands.
	Installer string `mapstructure:"installer"`
}

// Load reads the optional config file and applies environment overrides.
func Load() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(configDir, "llds"))
	v.AddConfigPath(".")

	v.SetDefault("source", plan.DefaultSource)
	v.SetDefault("installer", plan.DefaultInstaller)

	// Config file is optional - only a malformed file is an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if s := os.Getenv("LLDS_SOURCE"); s != "" {
		cfg.Source = s
	}
	if s := os.Getenv("LLDS_INSTALLER"); s != "" {
		cfg.Installer = s
	}

	return &cfg, nil
}

// GetConfigPath returns the path where the config file should be located
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "llds", "config.yaml"), nil
}

// ResolverOptions maps the config onto resolver options.
func (c *Config) ResolverOptions() []plan.Option {
	return []plan.Option{
		plan.WithSource(c.Source),
		plan.WithInstaller(c.Installer),
	}
}
