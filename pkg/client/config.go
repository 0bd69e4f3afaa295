package client

import (
	"strings"
	"time"

	"github.com/aethokit/aethokit-go/pkg/network"
)

// Config holds the settings for a Client.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// GasKey authenticates the caller to the relay. Required.
	// It is sent as the x-gas-key header on every call and is never logged.
	GasKey string

	// Network selects the relay endpoint: a registered network name
	// ("devnet", "testnet", "mainnet" by default), an explicit http(s) base
	// URL, or empty for the default network (devnet).
	Network string

	// HTTPTimeout bounds a whole request/response exchange, body included.
	HTTPTimeout time.Duration

	// DialTimeout bounds connection establishment and the TLS handshake.
	// Ignored when a custom HTTP client is injected via WithHTTPClient.
	DialTimeout time.Duration

	// Networks is the name-to-URL table used to resolve Network.
	// Defaults to network.DefaultRegistry().
	Networks *network.Registry
}

// DefaultConfig returns a Config with default values.
// At minimum, set GasKey before calling New.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills zero-valued fields with defaults.
func (c *Config) SetDefaults() {
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 30 * time.Second
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = 10 * time.Second
	}
	if c.Networks == nil {
		c.Networks = network.DefaultRegistry()
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GasKey) == "" {
		return ErrEmptyGasKey
	}
	return nil
}
