package cliconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				GasKey:       "file-key",
				Network:      "mainnet",
				HTTPTimeout:  "45s",
				DialTimeout:  "5s",
				NetworksFile: "/etc/aethokit/networks.toml",
				Verbose:      &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				GasKey:       "file-key",
				Network:      "mainnet",
				HTTPTimeout:  45 * time.Second,
				DialTimeout:  5 * time.Second,
				NetworksFile: "/etc/aethokit/networks.toml",
				Verbose:      true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				GasKey:  "file-key",
				Network: "mainnet",
			},
			changed: map[string]bool{"gas-key": true},
			initial: Config{GasKey: "flag-key"},
			expected: Config{
				GasKey:  "flag-key", // unchanged because the flag was set
				Network: "mainnet",
			},
		},
		{
			name:       "empty file changes nothing",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    Config{GasKey: "k", Network: "devnet"},
			expected:   Config{GasKey: "k", Network: "devnet"},
		},
		{
			name: "invalid duration",
			fileConfig: FileConfig{
				HTTPTimeout: "soon",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyFileConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(cfg, tt.expected) {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
gas_key = "toml-key"
network = "testnet"
http_timeout = "20s"
verbose = true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}
	if fc.GasKey != "toml-key" {
		t.Errorf("GasKey = %q, want toml-key", fc.GasKey)
	}
	if fc.Network != "testnet" {
		t.Errorf("Network = %q, want testnet", fc.Network)
	}
	if fc.HTTPTimeout != "20s" {
		t.Errorf("HTTPTimeout = %q, want 20s", fc.HTTPTimeout)
	}
	if fc.Verbose == nil || !*fc.Verbose {
		t.Error("Verbose = nil/false, want true")
	}
}

func TestLoadFileConfig_Missing(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadFileConfig() expected error for missing file")
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if FileExists(path) {
		t.Error("FileExists = true for absent file")
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists = false for existing file")
	}
}
