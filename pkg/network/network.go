package network

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Well-known network names.
const (
	Devnet  = "devnet"
	Testnet = "testnet"
	Mainnet = "mainnet"
)

// DefaultNetwork is used when no selector is supplied.
const DefaultNetwork = Devnet

// Relay base URLs for the well-known networks.
const (
	DevnetBaseURL  = "https://aethokit.onrender.com/api"
	TestnetBaseURL = "https://aethokit-testnet.onrender.com/api"
	MainnetBaseURL = "https://aethokit-mainnet.onrender.com/api"
)

// Resolution errors. Check with errors.Is.
var (
	// ErrInvalidEndpoint is returned when a selector matches no registered
	// network name and is not a valid http(s) URL either.
	ErrInvalidEndpoint = errors.New("aethokit: invalid relay endpoint")

	// ErrUnknownDefault is returned when a registry has no entry for the
	// default network and resolution is attempted with an absent selector.
	ErrUnknownDefault = errors.New("aethokit: registry has no default network")
)

// Registry maps network names to relay base URLs. It is immutable after
// construction; build a new Registry to pick up table changes.
type Registry struct {
	urls map[string]string
}

// NewRegistry creates a registry from a name-to-URL table.
// The table is copied; later mutation of the argument has no effect.
func NewRegistry(urls map[string]string) *Registry {
	m := make(map[string]string, len(urls))
	for name, u := range urls {
		m[name] = strings.TrimRight(u, "/")
	}
	return &Registry{urls: m}
}

// DefaultRegistry returns the built-in table of well-known networks.
func DefaultRegistry() *Registry {
	return NewRegistry(map[string]string{
		Devnet:  DevnetBaseURL,
		Testnet: TestnetBaseURL,
		Mainnet: MainnetBaseURL,
	})
}

// Lookup returns the base URL mapped to name. Matching is exact and
// case-sensitive.
func (r *Registry) Lookup(name string) (string, bool) {
	u, ok := r.urls[name]
	return u, ok
}

// Names returns the registered network names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.urls))
	for name := range r.urls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve turns a selector into a relay base URL.
//
// An empty selector resolves to the default network. A selector matching a
// registered name resolves to that name's URL. Anything else is treated as
// an explicit endpoint and must parse as an absolute http(s) URL; it is used
// verbatim apart from trailing-slash trimming. No network I/O happens here.
func (r *Registry) Resolve(selector string) (string, error) {
	if selector == "" {
		u, ok := r.urls[DefaultNetwork]
		if !ok {
			return "", ErrUnknownDefault
		}
		return u, nil
	}

	if u, ok := r.urls[selector]; ok {
		return u, nil
	}

	u, err := url.Parse(selector)
	if err != nil {
		return "", fmt.Errorf("%w: parse %q: %v", ErrInvalidEndpoint, selector, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q is neither a known network nor an http(s) URL", ErrInvalidEndpoint, selector)
	}
	return strings.TrimRight(selector, "/"), nil
}
