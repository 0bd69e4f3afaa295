package cliconfig

import "os"

// Environment variables recognized by the CLI. They override the config file
// and are overridden by explicitly-set flags.
const (
	EnvGasKey       = "AETHOKIT_GAS_KEY"
	EnvNetwork      = "AETHOKIT_NETWORK"
	EnvTimeout      = "AETHOKIT_TIMEOUT"
	EnvNetworksFile = "AETHOKIT_NETWORKS_FILE"
	EnvVerbose      = "AETHOKIT_VERBOSE"
)

// ApplyEnvConfig applies AETHOKIT_* environment variables to the Config.
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("gas-key", os.Getenv(EnvGasKey), &cfg.GasKey)
	s.setString("network", os.Getenv(EnvNetwork), &cfg.Network)
	s.setString("networks-file", os.Getenv(EnvNetworksFile), &cfg.NetworksFile)

	if err := s.setDuration("timeout", os.Getenv(EnvTimeout), &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setBoolFromString("verbose", os.Getenv(EnvVerbose), &cfg.Verbose)

	return nil
}
