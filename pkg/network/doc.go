// Package network resolves a caller-supplied network selector into the relay
// base URL the client will use for its lifetime.
//
// A selector is interpreted in exactly one of three ways, once, at client
// construction: a name registered in the Registry (exact, case-sensitive
// match), an explicit http(s) endpoint URL used verbatim, or absent, which
// selects the default network (devnet).
//
// The name-to-URL table is data, not code: use DefaultRegistry for the
// built-in table, NewRegistry for a custom one, or LoadRegistry to read one
// from a TOML file. Long-running applications can watch the file with
// WatchRegistry and construct fresh clients when the table changes.
package network
