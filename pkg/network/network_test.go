package network

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegistry_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		want     string
		wantErr  error
	}{
		{
			name:     "absent selector resolves to devnet",
			selector: "",
			want:     DevnetBaseURL,
		},
		{
			name:     "devnet by name",
			selector: "devnet",
			want:     DevnetBaseURL,
		},
		{
			name:     "testnet by name",
			selector: "testnet",
			want:     TestnetBaseURL,
		},
		{
			name:     "mainnet by name",
			selector: "mainnet",
			want:     MainnetBaseURL,
		},
		{
			name:     "explicit url used verbatim",
			selector: "https://relay.example.com/api",
			want:     "https://relay.example.com/api",
		},
		{
			name:     "explicit url trailing slash trimmed",
			selector: "http://localhost:8080/",
			want:     "http://localhost:8080",
		},
		{
			name:     "unknown name without scheme",
			selector: "betanet",
			wantErr:  ErrInvalidEndpoint,
		},
		{
			name:     "unsupported scheme",
			selector: "ftp://relay.example.com",
			wantErr:  ErrInvalidEndpoint,
		},
		{
			name:     "scheme without host",
			selector: "https://",
			wantErr:  ErrInvalidEndpoint,
		},
	}

	r := DefaultRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.selector)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %v", tt.selector, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.selector, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.selector, got, tt.want)
			}
		})
	}
}

func TestRegistry_Resolve_CaseSensitive(t *testing.T) {
	r := DefaultRegistry()
	if _, err := r.Resolve("Devnet"); !errors.Is(err, ErrInvalidEndpoint) {
		t.Errorf("Resolve(Devnet) error = %v, want ErrInvalidEndpoint", err)
	}
}

func TestRegistry_Resolve_MissingDefault(t *testing.T) {
	r := NewRegistry(map[string]string{"staging": "https://staging.example.com"})
	if _, err := r.Resolve(""); !errors.Is(err, ErrUnknownDefault) {
		t.Errorf("Resolve(\"\") error = %v, want ErrUnknownDefault", err)
	}
}

func TestNewRegistry_CopiesAndTrims(t *testing.T) {
	src := map[string]string{"devnet": "https://example.com/api/"}
	r := NewRegistry(src)

	src["devnet"] = "https://mutated.example.com"

	got, ok := r.Lookup("devnet")
	if !ok {
		t.Fatal("Lookup(devnet) not found")
	}
	if got != "https://example.com/api" {
		t.Errorf("Lookup(devnet) = %q, want trimmed original", got)
	}
}

func TestRegistry_Names(t *testing.T) {
	got := DefaultRegistry().Names()
	want := []string{"devnet", "mainnet", "testnet"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
