package client

// Descriptor is the logical specification of one HTTP call.
type Descriptor struct {
	// URL is a path (resolved against the client's base URL) or an
	// absolute URL when no base URL is configured.
	URL    string
	Method string
	Body   string
	// Headers are merged over the client's default headers.
	Headers map[string]string
	// EngineOptions are passed through to the transport engine verbatim
	// and applied after the constructed request fields, so they can
	// override URL, method, headers or proxy (engine-defined semantics).
	EngineOptions map[string]any
}
