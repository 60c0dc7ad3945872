package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	testConfig := Config{
		DataDir: filepath.Join(tmpDir, "data"),
		Defaults: DefaultConfig{
			Page: "experience",
		},
	}

	data, err := json.MarshalIndent(testConfig, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	// Test loading the config.
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DataDir != testConfig.DataDir {
		t.Errorf("Expected data dir %s, got %s", testConfig.DataDir, cfg.DataDir)
	}

	if cfg.GetDefaultPage() != "experience" {
		t.Errorf("Expected default page 'experience', got '%s'", cfg.GetDefaultPage())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	// A missing config file is fine: everything has a working default.
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-config.json"))
	if err != nil {
		t.Fatalf("Expected missing config to load defaults, got %v", err)
	}

	if cfg.DataDir == "" {
		t.Error("Expected a default data dir to be filled in")
	}

	if cfg.GetDefaultPage() != "home" {
		t.Errorf("Expected default page 'home', got '%s'", cfg.GetDefaultPage())
	}
}

func TestLoadEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("PORTFOLIO_DATA_DIR", filepath.Join(tmpDir, "env-data"))

	cfg, err := Load(filepath.Join(tmpDir, "no-such-config.json"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DataDir != filepath.Join(tmpDir, "env-data") {
		t.Errorf("Expected env override to win, got %s", cfg.DataDir)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	err := os.WriteFile(configPath, []byte("not valid json"), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err = Load(configPath)
	if err == nil {
		t.Error("Expected error loading invalid JSON, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{
			name: "valid config",
			config: Config{
				DataDir: "/tmp/portfolio-data",
				Defaults: DefaultConfig{
					Page: "home",
				},
			},
			wantError: false,
		},
		{
			name:      "empty config fills defaults",
			config:    Config{},
			wantError: false,
		},
		{
			name: "invalid default page",
			config: Config{
				Defaults: DefaultConfig{
					Page: "dashboard",
				},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	// Verify file was created.
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	// Read and verify the config structure.
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	var cfg Config
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		t.Fatalf("Failed to unmarshal config: %v", err)
	}

	if cfg.DataDir == "" {
		t.Error("Default data dir was not set")
	}

	if cfg.Defaults.Page == "" {
		t.Error("Default page was not set")
	}
}

func TestInitConfigAlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	// Create file first.
	err := os.WriteFile(configPath, []byte("{}"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Try to init - should fail.
	err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error when config already exists, got nil")
	}
}
