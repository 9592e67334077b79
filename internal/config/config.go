package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Default values for commands
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// DefaultsConfig holds default values for various commands
type DefaultsConfig struct {
	// read command defaults
	PreviewLines int `mapstructure:"preview_lines"`

	// search command defaults
	MaxResults int `mapstructure:"max_results"`
	PageSize   int `mapstructure:"page_size"`

	// Category filters applied by read/ui
	Categories        []string `mapstructure:"categories"`
	ExcludeCategories []string `mapstructure:"exclude_categories"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "text",
		Quiet:   false,
		Verbose: false,
		Defaults: DefaultsConfig{
			PreviewLines: 100,
			MaxResults:   1000,
			PageSize:     100,
		},
	}
}

// Load loads configuration from files and environment.
// Config file search order (highest precedence first):
// 1. ./.uelog.yaml or ./.uelog.yml
// 2. ~/.uelog.yaml or ~/.uelog.yml
// 3. $XDG_CONFIG_HOME/uelog/config.yaml (or ~/.config/uelog/config.yaml)
// 4. /etc/uelog/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	configFile := findConfigFile()
	if configFile != "" {
		v := viper.New()
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}

		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".uelog.yaml", ".uelog.yml", "uelog.yaml", "uelog.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	var searchPaths []string

	cwd, err := os.Getwd()
	if err == nil {
		searchPaths = append(searchPaths, cwd)
	}
	if homeErr == nil {
		searchPaths = append(searchPaths, home)
	}
	if configDirErr == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "uelog"))
	}
	searchPaths = append(searchPaths, "/etc/uelog")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("UELOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("UELOG_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("UELOG_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
}
