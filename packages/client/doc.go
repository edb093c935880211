// Package client is the request/response normalization layer of reqwrap.
//
// A Client merges each call's Descriptor with client-level defaults
// (base URL, default headers, proxy), delegates transport to an
// engine.Engine and shapes the outcome into exactly one Response or one
// *RequestError:
//   - Base URL prefixing (plain concatenation, callers supply the separator)
//   - Shallow header merge, per-call headers winning
//   - Proxy connection string built once from the ProxySpec
//   - JSON bodies decoded automatically, non-JSON kept as raw strings
//   - Non-success statuses turned into a structured *RequestError
//
// Transport faults from the engine (DNS, connect, timeout) propagate
// unchanged. Nothing is retried or suppressed at this layer.
package client
