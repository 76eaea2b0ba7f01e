package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for tokflow.
type Config struct {
	// MaxDepth caps the path length during enumeration.
	MaxDepth int `yaml:"max_depth" env:"TOKFLOW_MAX_DEPTH"`

	// MaxPaths caps the number of enumerated paths.
	MaxPaths int `yaml:"max_paths" env:"TOKFLOW_MAX_PATHS"`

	// CacheEnabled toggles the analysis result cache.
	CacheEnabled bool `yaml:"cache_enabled" env:"TOKFLOW_CACHE_ENABLED"`

	// CacheDir is the directory for persisted analysis results.
	CacheDir string `yaml:"cache_dir" env:"TOKFLOW_CACHE_DIR"`

	// CacheSize is the maximum number of cached results.
	CacheSize int `yaml:"cache_size" env:"TOKFLOW_CACHE_SIZE"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" env:"TOKFLOW_VERBOSE"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxDepth:     10000,
		MaxPaths:     100000,
		CacheEnabled: true,
		CacheDir:     defaultCacheDir(),
		CacheSize:    256,
		Verbose:      false,
	}
}

// defaultCacheDir returns the default result cache directory
// (~/.tokflow/cache, falling back to a relative path).
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tokflow/cache"
	}
	return filepath.Join(home, ".tokflow", "cache")
}

// globalConfigFilePath returns the global config file path (~/.tokflow/config.yaml)
func globalConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tokflow/config.yaml"
	}
	return filepath.Join(home, ".tokflow", "config.yaml")
}

// projectConfigFilePath returns the project-level config file path (./.tokflow/config.yaml)
func projectConfigFilePath() string {
	return ".tokflow/config.yaml"
}

// Load reads configuration with the following priority (highest to lowest):
// 1. Project-level config (./.tokflow/config.yaml)
// 2. Environment variables
// 3. Global config (~/.tokflow/config.yaml)
// 4. Defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	globalConfigPath := globalConfigFilePath()
	if data, err := os.ReadFile(globalConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", globalConfigPath, err)
		}
	}

	projectConfigPath := projectConfigFilePath()
	if data, err := os.ReadFile(projectConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", projectConfigPath, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile reads configuration from a specific YAML file path
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified YAML file path.
// It creates parent directories if they don't exist.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// GlobalPath returns the path used for `tokflow init` output.
func GlobalPath() string {
	return globalConfigFilePath()
}

// applyEnvOverrides applies environment variable overrides to the config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TOKFLOW_MAX_DEPTH"); v != "" {
		if i := parseInt(v); i > 0 {
			cfg.MaxDepth = i
		}
	}
	if v := os.Getenv("TOKFLOW_MAX_PATHS"); v != "" {
		if i := parseInt(v); i > 0 {
			cfg.MaxPaths = i
		}
	}
	if v := os.Getenv("TOKFLOW_CACHE_ENABLED"); v != "" {
		cfg.CacheEnabled = v == "true" || v == "1" || v == "yes"
	}
	if v := os.Getenv("TOKFLOW_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("TOKFLOW_CACHE_SIZE"); v != "" {
		if i := parseInt(v); i > 0 {
			cfg.CacheSize = i
		}
	}
	if v := os.Getenv("TOKFLOW_VERBOSE"); v != "" {
		cfg.Verbose = v == "true" || v == "1" || v == "yes"
	}
}

// Validate checks that the configuration has valid required fields
func (c *Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive")
	}
	if c.MaxPaths <= 0 {
		return fmt.Errorf("max_paths must be positive")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must be non-negative")
	}
	if c.CacheEnabled && c.CacheDir == "" {
		return fmt.Errorf("cache_dir is required when cache_enabled is true")
	}
	return nil
}

// parseInt parses an integer, returning 0 on failure.
func parseInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}
