package client

import (
	"encoding/json"
	"strings"

	"github.com/apiglue/reqwrap/packages/engine"
	"github.com/tidwall/gjson"
)

// Echo mirrors the request the engine actually sent, for caller
// introspection: the engine's own request object plus the merged
// header set this layer produced.
type Echo struct {
	Config  *engine.Request
	Headers map[string]string
}

// Response is the normalized outcome of a successful call.
type Response struct {
	// Data is the JSON-decoded body when the body parses as JSON,
	// otherwise the raw body string.
	Data       any
	StatusCode int
	// OK reports the engine's own success classification.
	OK      bool
	Headers map[string]string
	Request Echo

	raw string
}

// Raw returns the response body exactly as the engine delivered it.
func (r *Response) Raw() string {
	return r.raw
}

// Get extracts a value from a JSON body by gjson path, e.g.
// resp.Get("items.0.id"). The result does not exist for non-JSON bodies.
func (r *Response) Get(path string) gjson.Result {
	return gjson.Get(r.raw, path)
}

// Header looks up a response header case-insensitively.
func (r *Response) Header(key string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// decodeBody classifies a body as JSON iff it parses under the standard
// decoder; anything else, including the empty string, stays raw.
func decodeBody(body string) any {
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return body
	}
	return v
}
