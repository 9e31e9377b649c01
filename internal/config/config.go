// Package config loads exporter configuration from the environment,
// an optional config file, and an optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Last.fm API key (required, secret)
	APIKey string

	// Last.fm username to fetch data for
	Username string

	// Output path for the generated YAML file
	Output string

	// Number of items fetched per chart
	Limit int

	// Optional path to the export-history SQLite database
	// (empty = history disabled)
	HistoryDB string

	// Log level (debug, info, warn, error)
	LogLevel string
}

// Defaults.
const (
	DefaultUsername = "jaimeum19"
	DefaultOutput   = "_data/music.yml"
	DefaultLimit    = 5
	DefaultLogLevel = "info"
)

// Load reads configuration from file and environment
func Load() (*Config, error) {
	// A .env in the working directory is optional; CI sets real
	// environment variables instead.
	_ = godotenv.Load()

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("username", DefaultUsername)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("limit", DefaultLimit)
	v.SetDefault("log_level", DefaultLogLevel)

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("MUSICDATA")
	v.AutomaticEnv()

	// The Last.fm credentials keep their historical variable names.
	_ = v.BindEnv("api_key", "LASTFM_API_KEY")
	_ = v.BindEnv("username", "LASTFM_USERNAME", "MUSICDATA_USERNAME")

	// Map config to struct
	cfg := &Config{
		APIKey:    v.GetString("api_key"),
		Username:  v.GetString("username"),
		Output:    v.GetString("output"),
		Limit:     v.GetInt("limit"),
		HistoryDB: v.GetString("history_db"),
		LogLevel:  v.GetString("log_level"),
	}

	return cfg, nil
}

// Validate checks the configuration before any network call is made.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("LASTFM_API_KEY environment variable is not set (get an API key at https://www.last.fm/api/account/create)")
	}
	if c.Username == "" {
		return fmt.Errorf("username must not be empty")
	}
	return nil
}

// getConfigDir returns the configuration directory path
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".config", "musicdata")
}
