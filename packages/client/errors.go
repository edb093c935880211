package client

import (
	"fmt"

	"github.com/apiglue/reqwrap/packages/engine"
)

// CallConfig echoes the method and resolved URL of one call.
type CallConfig struct {
	Method string
	URL    string
}

// ErrorResponse carries the transport result that triggered a
// RequestError: parsed-or-raw body, status and response headers.
type ErrorResponse struct {
	Data    any
	Status  int
	Headers map[string]string
	Config  CallConfig
}

// RequestInfo echoes the merged request headers and call config so
// callers can introspect what was actually sent.
type RequestInfo struct {
	Headers map[string]string
	Config  CallConfig
}

// RequestError reports a transport result with a non-success status.
// It is built only inside the normalization path, never retried, and
// distinguishable from plain transport faults via errors.As.
type RequestError struct {
	Message  string
	Response ErrorResponse
	Request  RequestInfo
}

func (e *RequestError) Error() string {
	return e.Message
}

func newRequestError(res *engine.Result, method, url string, headers map[string]string) *RequestError {
	call := CallConfig{Method: method, URL: url}
	return &RequestError{
		Message: fmt.Sprintf("%s %s: request failed with status %d", method, url, res.StatusCode),
		Response: ErrorResponse{
			Data:    decodeBody(res.Body),
			Status:  res.StatusCode,
			Headers: res.Headers,
			Config:  call,
		},
		Request: RequestInfo{
			Headers: headers,
			Config:  call,
		},
	}
}
