package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	DataDir  string        `json:"data_dir"`
	Defaults DefaultConfig `json:"defaults"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	Page string `json:"page,omitempty"`
}

// GetDefaultPage returns the page shown by a bare `show` invocation.
func (c *Config) GetDefaultPage() (page string) {
	if c.Defaults.Page != "" {
		page = c.Defaults.Page
		return page
	}
	page = "home"
	return page
}

// Load reads configuration from file with environment variable overrides.
// A missing config file is not an error: the defaults work out of the box,
// so first-run users can skip `init` entirely.
func Load(configPath string) (cfg Config, err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return cfg, err
		}
		path = filepath.Join(homeDir, ".portfolio-admin", "config.json")
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			err = errors.Wrapf(err, "failed to read config file: %s", path)
			return cfg, err
		}
		err = nil
	} else {
		// Parse JSON
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	}

	// Override with environment variable if set
	if dataDir := os.Getenv("PORTFOLIO_DATA_DIR"); dataDir != "" {
		cfg.DataDir = dataDir
	}

	// Fill in defaults and validate
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() (err error) {
	// Default data directory if not specified
	if c.DataDir == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return err
		}
		c.DataDir = filepath.Join(homeDir, ".portfolio-admin", "data")
	}

	switch c.Defaults.Page {
	case "", "home", "about", "experience", "projects", "skills", "contact":
	default:
		err = errors.Errorf("invalid default page: %s", c.Defaults.Page)
		return err
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return err
		}
		path = filepath.Join(homeDir, ".portfolio-admin", "config.json")
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	// Create default config
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return err
	}

	defaultConfig := Config{
		DataDir: filepath.Join(homeDir, ".portfolio-admin", "data"),
		Defaults: DefaultConfig{
			Page: "home",
		},
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
