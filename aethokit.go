// Package aethokit provides a Go client for the Aethokit gas-sponsorship
// relay. The relay pays transaction fees on behalf of applications holding a
// gas key.
//
// Example usage:
//
//	cfg := aethokit.DefaultConfig()
//	cfg.GasKey = os.Getenv("AETHOKIT_GAS_KEY")
//	cfg.Network = aethokit.Devnet
//
//	c, err := aethokit.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	addr, err := c.GetGasAddress(ctx)   // sponsor (fee payer) address
//	hash, err := c.SponsorTx(ctx, tx)   // tx is an opaque serialized transaction
package aethokit

import (
	"github.com/aethokit/aethokit-go/pkg/client"
	"github.com/aethokit/aethokit-go/pkg/log"
	"github.com/aethokit/aethokit-go/pkg/network"
)

// Client is a handle to the gas-sponsorship relay.
// It is immutable after construction and safe for concurrent use.
type Client = client.Client

// Config holds the settings for a Client.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = client.Config

// Option configures optional behavior of a Client.
type Option = client.Option

// APIError describes why a call produced no result.
type APIError = client.APIError

// HTTPClient abstracts HTTP request execution for custom transports.
// The standard *http.Client satisfies this interface.
type HTTPClient = client.HTTPClient

// Well-known network names accepted by Config.Network.
const (
	Devnet  = network.Devnet
	Testnet = network.Testnet
	Mainnet = network.Mainnet
)

// Errors returned by New and the call operations. Check with errors.Is.
var (
	ErrEmptyGasKey       = client.ErrEmptyGasKey
	ErrInvalidEndpoint   = network.ErrInvalidEndpoint
	ErrEmptyTx           = client.ErrEmptyTx
	ErrTransport         = client.ErrTransport
	ErrTimeout           = client.ErrTimeout
	ErrCanceled          = client.ErrCanceled
	ErrRelay             = client.ErrRelay
	ErrMalformedResponse = client.ErrMalformedResponse
)

// New creates a Client from the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	return client.New(cfg, opts...)
}

// DefaultConfig returns a Config with sensible default values.
// At minimum, you must set GasKey before calling New.
func DefaultConfig() Config {
	return client.DefaultConfig()
}

// WithHTTPClient sets a custom HTTP client for relay communication.
func WithHTTPClient(c HTTPClient) Option {
	return client.WithHTTPClient(c)
}

// WithLogger sets a logger for request diagnostics.
func WithLogger(l log.Logger) Option {
	return client.WithLogger(l)
}
