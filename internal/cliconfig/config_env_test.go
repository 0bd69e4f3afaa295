package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv(EnvGasKey, "env-key")
	t.Setenv(EnvNetwork, "mainnet")
	t.Setenv(EnvTimeout, "12s")
	t.Setenv(EnvVerbose, "1")

	cfg := Config{}
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}

	if cfg.GasKey != "env-key" {
		t.Errorf("GasKey = %q, want env-key", cfg.GasKey)
	}
	if cfg.Network != "mainnet" {
		t.Errorf("Network = %q, want mainnet", cfg.Network)
	}
	if cfg.HTTPTimeout != 12*time.Second {
		t.Errorf("HTTPTimeout = %v, want 12s", cfg.HTTPTimeout)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestApplyEnvConfig_RespectsFlags(t *testing.T) {
	t.Setenv(EnvGasKey, "env-key")
	t.Setenv(EnvNetwork, "mainnet")

	cfg := Config{GasKey: "flag-key", Network: "devnet"}
	changed := map[string]bool{"gas-key": true, "network": true}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}

	if cfg.GasKey != "flag-key" {
		t.Errorf("GasKey = %q, want flag-key", cfg.GasKey)
	}
	if cfg.Network != "devnet" {
		t.Errorf("Network = %q, want devnet", cfg.Network)
	}
}

func TestApplyEnvConfig_InvalidTimeout(t *testing.T) {
	t.Setenv(EnvTimeout, "later")

	cfg := Config{}
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err == nil {
		t.Error("ApplyEnvConfig() expected error for invalid duration")
	}
}
