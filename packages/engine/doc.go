// Package engine defines the transport contract the reqwrap client
// delegates to, plus a default implementation backed by net/http.
//
// The engine owns everything network-related:
//   - Connection pooling and timeouts
//   - TLS verification and redirect handling
//   - Proxy negotiation
//   - Reading the response body (always fully, as text)
//
// The client layer above never touches the network itself; swapping the
// engine (for tests or a custom transport) only requires implementing
// the Engine interface.
package engine
