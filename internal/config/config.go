package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Spotify application credentials
	ClientID     string
	ClientSecret string

	// Redirect URI registered for the application, used by the login flow
	// Default: "http://localhost:8888/callback"
	RedirectURI string

	// Preferred market (ISO 3166-1 alpha-2) applied to track lookups when
	// no --market flag is given
	Market string

	// How long API responses stay cached, in seconds
	// Default: 600
	CacheTTL int
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("redirect_uri", "http://localhost:8888/callback")
	v.SetDefault("cache_ttl", 600)

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables. Keys stay flat so SPOTIFY_CLIENT_ID
	// and SPOTIFY_CLIENT_SECRET resolve without a key replacer.
	v.SetEnvPrefix("SPOTIFY")
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		ClientID:     v.GetString("client_id"),
		ClientSecret: v.GetString("client_secret"),
		RedirectURI:  v.GetString("redirect_uri"),
		Market:       v.GetString("market"),
		CacheTTL:     v.GetInt("cache_ttl"),
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "gospoty")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// HasCredentials reports whether both application credentials are present
func (c *Config) HasCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// CacheTTLDuration converts the configured TTL to a duration. A
// non-positive TTL yields zero, leaving the client's default in effect
func (c *Config) CacheTTLDuration() time.Duration {
	if c.CacheTTL <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTL) * time.Second
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configDir := getConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper
	v.Set("client_id", c.ClientID)
	v.Set("client_secret", c.ClientSecret)
	v.Set("redirect_uri", c.RedirectURI)
	v.Set("market", c.Market)
	v.Set("cache_ttl", c.CacheTTL)

	// Write to file
	return v.WriteConfigAs(configFile)
}
