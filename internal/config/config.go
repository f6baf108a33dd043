package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// StoreConfig selects the document store implementation.
type StoreConfig struct {
	Type string `yaml:"type"`
}

// ImportConfig configures which file types the editor imports.
type ImportConfig struct {
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

// SearchConfig configures result presentation.
type SearchConfig struct {
	MaxResults int `yaml:"max_results"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Store  StoreConfig  `yaml:"store"`
	Import ImportConfig `yaml:"import"`
	Search SearchConfig `yaml:"search"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/warraq/config.yaml.
// If neither exists, it writes defaults to ~/.config/warraq/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "warraq", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Store:  StoreConfig{Type: "memory"},
		Import: ImportConfig{AllowedExtensions: []string{"txt", "md"}},
		Search: SearchConfig{MaxResults: 10},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Store.Type == "" {
		cfg.Store.Type = "memory"
	}
	if len(cfg.Import.AllowedExtensions) == 0 {
		cfg.Import.AllowedExtensions = []string{"txt", "md"}
	}
	if cfg.Search.MaxResults == 0 {
		cfg.Search.MaxResults = 10
	}
}
