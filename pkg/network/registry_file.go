package network

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// registryFile is the TOML schema for a registry file:
//
//	[networks]
//	devnet  = "https://aethokit.onrender.com/api"
//	mainnet = "https://aethokit-mainnet.onrender.com/api"
type registryFile struct {
	Networks map[string]string `toml:"networks"`
}

// LoadRegistry reads a network table from a TOML file.
// Every entry must be a valid absolute http(s) URL.
func LoadRegistry(path string) (*Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}

	var rf registryFile
	if err := toml.Unmarshal(b, &rf); err != nil {
		return nil, fmt.Errorf("parse registry file: %w", err)
	}
	if len(rf.Networks) == 0 {
		return nil, fmt.Errorf("registry file %s: no [networks] entries", path)
	}

	// Validate against an empty registry so entries are forced to be URLs
	// and cannot alias other names in the file.
	valid := NewRegistry(nil)
	urls := make(map[string]string, len(rf.Networks))
	for name, u := range rf.Networks {
		resolved, err := valid.Resolve(u)
		if err != nil {
			return nil, fmt.Errorf("registry file %s: network %q: %w", path, name, err)
		}
		urls[name] = resolved
	}
	return NewRegistry(urls), nil
}
