package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"MaxDepth", cfg.MaxDepth, 10000},
		{"MaxPaths", cfg.MaxPaths, 100000},
		{"CacheEnabled", cfg.CacheEnabled, true},
		{"CacheSize", cfg.CacheSize, 256},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("DefaultConfig().%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	if cfg.CacheDir == "" {
		t.Errorf("DefaultConfig().CacheDir is empty")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name:    "valid defaults",
			cfg:     DefaultConfig(),
			wantErr: false,
		},
		{
			name: "zero max depth",
			cfg: &Config{
				MaxDepth: 0,
				MaxPaths: 100,
			},
			wantErr: true,
		},
		{
			name: "negative max paths",
			cfg: &Config{
				MaxDepth: 100,
				MaxPaths: -1,
			},
			wantErr: true,
		},
		{
			name: "negative cache size",
			cfg: &Config{
				MaxDepth:  100,
				MaxPaths:  100,
				CacheSize: -1,
			},
			wantErr: true,
		},
		{
			name: "cache enabled without dir",
			cfg: &Config{
				MaxDepth:     100,
				MaxPaths:     100,
				CacheEnabled: true,
				CacheDir:     "",
			},
			wantErr: true,
		},
		{
			name: "cache disabled without dir is fine",
			cfg: &Config{
				MaxDepth:     100,
				MaxPaths:     100,
				CacheEnabled: false,
				CacheDir:     "",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `max_depth: 500
max_paths: 2000
cache_enabled: false
verbose: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.MaxDepth != 500 {
		t.Errorf("MaxDepth = %d, want 500", cfg.MaxDepth)
	}
	if cfg.MaxPaths != 2000 {
		t.Errorf("MaxPaths = %d, want 2000", cfg.MaxPaths)
	}
	if cfg.CacheEnabled {
		t.Errorf("CacheEnabled = true, want false")
	}
	if !cfg.Verbose {
		t.Errorf("Verbose = false, want true")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Errorf("LoadFromFile() on missing file should error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TOKFLOW_MAX_DEPTH", "42")
	t.Setenv("TOKFLOW_MAX_PATHS", "84")
	t.Setenv("TOKFLOW_VERBOSE", "true")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.MaxDepth != 42 {
		t.Errorf("MaxDepth = %d, want 42", cfg.MaxDepth)
	}
	if cfg.MaxPaths != 84 {
		t.Errorf("MaxPaths = %d, want 84", cfg.MaxPaths)
	}
	if !cfg.Verbose {
		t.Errorf("Verbose = false, want true")
	}
}

func TestSaveRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.MaxDepth = 77
	cfg.CacheEnabled = false

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.MaxDepth != 77 {
		t.Errorf("MaxDepth = %d, want 77", loaded.MaxDepth)
	}
	if loaded.CacheEnabled {
		t.Errorf("CacheEnabled = true, want false")
	}
}

func TestParseInt(t *testing.T) {
	if got := parseInt("123"); got != 123 {
		t.Errorf("parseInt(123) = %d", got)
	}
	if got := parseInt("nope"); got != 0 {
		t.Errorf("parseInt(nope) = %d, want 0", got)
	}
}
