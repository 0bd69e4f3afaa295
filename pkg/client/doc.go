// Package client implements the Aethokit gas-sponsorship relay client.
//
// A Client is constructed once from a Config (gas key plus an optional
// network selector) and then exposes two operations: GetGasAddress fetches
// the fee-paying sponsor address, and SponsorTx submits an opaque serialized
// transaction for sponsorship. Each operation is a single request/response
// exchange; the client never retries and never caches.
//
// # Usage
//
//	cfg := client.DefaultConfig()
//	cfg.GasKey = os.Getenv("AETHOKIT_GAS_KEY")
//	cfg.Network = "devnet"
//
//	c, err := client.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	addr, err := c.GetGasAddress(ctx)
//	if err != nil {
//	    return err
//	}
//
//	hash, err := c.SponsorTx(ctx, serializedTx)
//
// # Errors
//
// Construction fails with ErrEmptyGasKey or network.ErrInvalidEndpoint. Call
// failures are always an *APIError; classify with errors.Is against the
// exported kind sentinels (ErrTimeout, ErrRelay, ...).
package client
