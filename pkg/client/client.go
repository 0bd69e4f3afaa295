package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/aethokit/aethokit-go/pkg/log"
)

// Relay endpoints under the resolved base URL.
const (
	gasAddressEndpoint = "/get-gas-address"
	sponsorTxEndpoint  = "/sponsor-tx"
)

// maxResponseBytes caps how much of a relay response is read into memory.
const maxResponseBytes = 1 << 20 // 1MB

// Client is a handle to the Aethokit gas-sponsorship relay.
//
// The gas key and the resolved endpoint are fixed at construction; every call
// through a Client targets the same endpoint with the same credential. A
// Client is immutable and safe for concurrent use. To rotate the gas key or
// switch networks, construct a new Client.
type Client struct {
	endpoint string
	gasKey   string
	http     HTTPClient
	logger   log.Logger
}

// New creates a Client from the given configuration.
// Resolution of the network selector happens here, once, with no network I/O;
// endpoint reachability is not verified.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	endpoint, err := cfg.Networks.Resolve(cfg.Network)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = newHTTPClient(cfg)
	}

	return &Client{
		endpoint: endpoint,
		gasKey:   cfg.GasKey,
		http:     o.httpClient,
		logger:   o.logger,
	}, nil
}

// newHTTPClient builds the owned transport with bounded connect, TLS, and
// overall timeouts.
func newHTTPClient(cfg Config) *http.Client {
	return &http.Client{
		Timeout: cfg.HTTPTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: cfg.DialTimeout,
			}).DialContext,
			TLSHandshakeTimeout:   cfg.DialTimeout,
			ResponseHeaderTimeout: cfg.HTTPTimeout,
		},
	}
}

// Endpoint returns the resolved relay base URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// GetGasAddress fetches the sponsor address for the gas tank associated with
// the gas key. The sponsor address is the account that pays fees on the
// caller's behalf.
func (c *Client) GetGasAddress(ctx context.Context) (string, error) {
	var resp gasAddressResponse
	if err := c.do(ctx, http.MethodGet, gasAddressEndpoint, nil, &resp); err != nil {
		return "", err
	}
	if resp.Address == "" {
		return "", &APIError{Kind: ErrMalformedResponse, Field: "address"}
	}
	return resp.Address, nil
}

// SponsorTx submits a serialized transaction for sponsorship and returns the
// transaction hash once the relay has countersigned and submitted it.
// The payload is opaque to the client; its validity is the relay's concern.
func (c *Client) SponsorTx(ctx context.Context, serializedTx string) (string, error) {
	if serializedTx == "" {
		return "", &APIError{Kind: ErrEmptyTx}
	}

	var resp sponsorTxResponse
	req := sponsorTxRequest{Tx: serializedTx}
	if err := c.do(ctx, http.MethodPost, sponsorTxEndpoint, &req, &resp); err != nil {
		return "", err
	}
	if resp.Hash == "" {
		return "", &APIError{Kind: ErrMalformedResponse, Field: "hash"}
	}
	return resp.Hash, nil
}

// do performs one request/response exchange: build, send, classify, decode.
// Exactly one network exchange per call; retries are the caller's decision.
func (c *Client) do(ctx context.Context, method, path string, reqBody, out interface{}) error {
	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	url := c.endpoint + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("x-gas-key", c.gasKey)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := classifyTransportErr(ctx, err)
		c.logger.Debug("relay request failed",
			log.String("method", method),
			log.String("path", path),
			log.Err(apiErr))
		return apiErr
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &APIError{Kind: ErrTransport, StatusCode: resp.StatusCode, cause: err}
	}

	c.logger.Debug("relay request complete",
		log.String("method", method),
		log.String("path", path),
		log.Int("status", resp.StatusCode),
		log.Duration("duration", time.Since(start)))

	if resp.StatusCode/100 != 2 {
		return relayErr(resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &APIError{Kind: ErrMalformedResponse, StatusCode: resp.StatusCode, cause: err}
	}
	return nil
}

// classifyTransportErr maps a send failure to its APIError kind.
func classifyTransportErr(ctx context.Context, err error) *APIError {
	switch {
	case errors.Is(err, context.Canceled) || ctx.Err() == context.Canceled:
		return &APIError{Kind: ErrCanceled, cause: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &APIError{Kind: ErrTimeout, cause: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &APIError{Kind: ErrTimeout, cause: err}
	}
	return &APIError{Kind: ErrTransport, cause: err}
}

// relayErr maps a non-2xx response to an APIError. A decodable error body
// yields ErrRelay with the relay's code and message; anything else is a
// transport-level failure that still carries the status and a body snippet.
func relayErr(status int, body []byte) *APIError {
	var eb relayErrorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Code != "" {
		return &APIError{
			Kind:       ErrRelay,
			StatusCode: status,
			Code:       eb.Code,
			Message:    eb.Message,
		}
	}
	return &APIError{
		Kind:       ErrTransport,
		StatusCode: status,
		Message:    snippet(body),
	}
}

// snippet trims a response body for inclusion in an error message.
func snippet(body []byte) string {
	const max = 256
	s := string(bytes.TrimSpace(body))
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}

// Wire types for the relay's JSON bodies.

type gasAddressResponse struct {
	Address string `json:"address"`
}

type sponsorTxRequest struct {
	Tx string `json:"tx"`
}

type sponsorTxResponse struct {
	Hash string `json:"hash"`
}

type relayErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
