package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config holds the configuration for the TastyRecipes server.
type Config struct {
	// Listen is the address the TastyRecipes server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// SessionKey is the key used to encrypt session data.
	SessionKey string `yaml:"session_key" mapstructure:"session_key"`
	// SessionMaxAge is the maximum age of a session in seconds.
	SessionMaxAge int `yaml:"session_max_age" mapstructure:"session_max_age"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the path to the sqlite database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
// If no config file is found, the defaults are used.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Configure Viper
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TASTYRECIPES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var configFileFound bool
	if path != "" {
		// Use specific config file
		v.SetConfigFile(path)
	} else {
		// Search for config in common locations
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.tastyrecipes")
		v.AddConfigPath("/etc/tastyrecipes")
	}

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileFound = true
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if configFileFound {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("Environment variables with TASTYRECIPES_ prefix will override config file values")
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", ":8080")
	v.SetDefault("database.path", "data/tastyrecipes.db")
	// Registered empty so the env override is picked up by Unmarshal.
	v.SetDefault("session_key", "")
	v.SetDefault("session_max_age", 3600)
}

// validateConfig validates the loaded configuration.
func validateConfig(c *Config) error {
	if c.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.Database == nil || c.Database.Path == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("session max age must be positive")
	}
	if c.SessionKey == "" {
		// Sessions won't survive a restart without a configured key.
		c.SessionKey = uuid.New().String()
		log.Warn("no session key configured, generated an ephemeral one")
	}
	return nil
}
