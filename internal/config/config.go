// Package config handles configuration management using Viper
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Device selects which touchpad to operate on
	Device DeviceConfig `mapstructure:"device"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`

	// Profile holds attribute values applied by `padctl apply`,
	// keyed by attribute name
	Profile map[string]any `mapstructure:"profile"`
}

// DeviceConfig selects the touchpad and display to talk to
type DeviceConfig struct {
	Name    string `mapstructure:"name"`    // Device name substring; empty = first touchpad
	Display string `mapstructure:"display"` // X display; empty = $DISPLAY
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Device: DeviceConfig{
			Name:    "",
			Display: "",
		},
		Logging: LoggingConfig{
			LogLevel: "",
		},
		Profile: map[string]any{},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("padctl")
	viper.SetConfigType("toml")

	// If a specific path is set, use only that
	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		// Add config paths in order of precedence
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "padctl"))
		}
		viper.AddConfigPath("/etc/padctl")
		viper.AddConfigPath(".") // Current directory (lowest priority)
	}

	viper.SetDefault("device.name", DefaultConfig.Device.Name)
	viper.SetDefault("device.display", DefaultConfig.Device.Display)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)
	viper.SetDefault("profile", DefaultConfig.Profile)

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	// Unmarshal config
	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// Save saves the current configuration to file
func Save() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	// If override is set, use that
	if configPathOverride != "" {
		return configPathOverride
	}

	// Check if config file is already loaded
	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "/etc/padctl/padctl.toml"
	}
	return filepath.Join(home, ".config", "padctl", "padctl.toml")
}

// SetDeviceName pins the touchpad to operate on and saves the config
func SetDeviceName(name string) error {
	c := Get()
	c.Device.Name = name
	viper.Set("device.name", name)
	return Save()
}

// SetProfileValue stores one attribute value in the profile section and
// saves the config
func SetProfileValue(attribute string, value any) error {
	c := Get()
	if c.Profile == nil {
		c.Profile = map[string]any{}
	}
	c.Profile[attribute] = value
	viper.Set("profile", c.Profile)
	return Save()
}
