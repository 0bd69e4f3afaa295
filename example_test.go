package aethokit_test

import (
	"fmt"
	"log"

	aethokit "github.com/aethokit/aethokit-go"
)

// Construct a client against the default network. No network I/O happens
// until an operation is called.
func Example() {
	cfg := aethokit.DefaultConfig()
	cfg.GasKey = "demo-gas-key"

	c, err := aethokit.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(c.Endpoint())
	// Output: https://aethokit.onrender.com/api
}

func ExampleNew_explicitEndpoint() {
	cfg := aethokit.DefaultConfig()
	cfg.GasKey = "demo-gas-key"
	cfg.Network = "https://relay.internal.example.com/api"

	c, err := aethokit.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(c.Endpoint())
	// Output: https://relay.internal.example.com/api
}
