package client

import "github.com/aethokit/aethokit-go/pkg/log"

// Option configures optional behavior of a Client.
type Option func(*options)

// options holds the optional collaborators of a Client.
type options struct {
	httpClient HTTPClient
	logger     log.Logger
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		httpClient: nil, // built from Config timeouts in New
		logger:     log.NewNoopLogger(),
	}
}

// WithHTTPClient sets a custom HTTP client for relay communication.
// If not provided, a client with the configured timeouts is used.
// Connection pooling and reuse are the injected client's concern.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a logger for request diagnostics.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
