package client

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/apiglue/reqwrap/packages/debug"
	"github.com/apiglue/reqwrap/packages/engine"
)

// Client merges per-call descriptors with client-level defaults,
// delegates transport to an engine and normalizes the outcome. Safe for
// concurrent use; the debug flag is the only mutable state and is
// synchronized.
type Client struct {
	engine         engine.Engine
	reporter       debug.Reporter
	defaultHeaders map[string]string
	baseURL        string
	proxyURL       string
	debug          atomic.Bool
}

type Option func(*Client)

// WithEngine replaces the default net/http-backed engine.
func WithEngine(e engine.Engine) Option {
	return func(c *Client) {
		c.engine = e
	}
}

// WithReporter sets the diagnostic sink used in debug mode.
func WithReporter(r debug.Reporter) Option {
	return func(c *Client) {
		c.reporter = r
	}
}

// New builds a client from cfg. It fails fast on a partially
// credentialed or otherwise invalid proxy spec so a malformed proxy URL
// can never be emitted later.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Proxy.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		defaultHeaders: make(map[string]string, len(cfg.DefaultHeaders)),
		baseURL:        cfg.BaseURL,
	}
	for k, v := range cfg.DefaultHeaders {
		c.defaultHeaders[k] = v
	}
	if url, ok := cfg.Proxy.URL(); ok {
		c.proxyURL = url
	}
	c.debug.Store(cfg.Debug)

	for _, opt := range opts {
		opt(c)
	}

	if c.engine == nil {
		c.engine = engine.New()
	}
	if c.reporter == nil {
		c.reporter = debug.Discard
	}
	return c, nil
}

// SetDebug toggles diagnostic reporting for this client instance.
func (c *Client) SetDebug(on bool) {
	c.debug.Store(on)
}

// DebugEnabled reports whether diagnostic reporting is currently on.
func (c *Client) DebugEnabled() bool {
	return c.debug.Load()
}

// Do executes one descriptor and returns exactly one normalized
// response or one error. Engine faults (DNS, connect, timeout)
// propagate unchanged; a non-success status becomes a *RequestError.
func (c *Client) Do(ctx context.Context, d Descriptor) (*Response, error) {
	// Plain concatenation; callers supply the leading separator.
	url := d.URL
	if c.baseURL != "" {
		url = c.baseURL + d.URL
	}

	headers := make(map[string]string, len(c.defaultHeaders)+len(d.Headers))
	for k, v := range c.defaultHeaders {
		headers[k] = v
	}
	for k, v := range d.Headers {
		headers[k] = v
	}

	res, err := c.engine.Do(ctx, &engine.Request{
		URL:      url,
		Method:   d.Method,
		Body:     d.Body,
		Headers:  headers,
		ProxyURL: c.proxyURL,
		Options:  d.EngineOptions,
	})
	if err != nil {
		c.report(d.Method, url, 0, "", err.Error())
		return nil, err
	}

	if !res.OK {
		reqErr := newRequestError(res, d.Method, url, headers)
		c.report(d.Method, url, res.StatusCode, res.Body, reqErr.Message)
		return nil, reqErr
	}

	return &Response{
		Data:       decodeBody(res.Body),
		StatusCode: res.StatusCode,
		OK:         res.OK,
		Headers:    res.Headers,
		Request:    Echo{Config: res.Request, Headers: headers},
		raw:        res.Body,
	}, nil
}

// Request executes a single call described positionally. body may be
// empty; headers and options may be nil.
func (c *Client) Request(ctx context.Context, url, method, body string, headers map[string]string, options map[string]any) (*Response, error) {
	return c.Do(ctx, Descriptor{
		URL:           url,
		Method:        method,
		Body:          body,
		Headers:       headers,
		EngineOptions: options,
	})
}

// Get issues a GET request. A supplied debug flag toggles diagnostic
// reporting for the whole client instance, not just this call.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string, options map[string]any, debugFlag ...bool) (*Response, error) {
	c.applyDebug(debugFlag)
	return c.Request(ctx, url, http.MethodGet, "", headers, options)
}

// Post issues a POST request. See Get for the debug flag semantics.
func (c *Client) Post(ctx context.Context, url, body string, headers map[string]string, options map[string]any, debugFlag ...bool) (*Response, error) {
	c.applyDebug(debugFlag)
	return c.Request(ctx, url, http.MethodPost, body, headers, options)
}

// Put issues a PUT request. See Get for the debug flag semantics.
func (c *Client) Put(ctx context.Context, url, body string, headers map[string]string, options map[string]any, debugFlag ...bool) (*Response, error) {
	c.applyDebug(debugFlag)
	return c.Request(ctx, url, http.MethodPut, body, headers, options)
}

// Delete issues a DELETE request. See Get for the debug flag semantics.
func (c *Client) Delete(ctx context.Context, url string, headers map[string]string, options map[string]any, debugFlag ...bool) (*Response, error) {
	c.applyDebug(debugFlag)
	return c.Request(ctx, url, http.MethodDelete, "", headers, options)
}

func (c *Client) applyDebug(flags []bool) {
	if len(flags) > 0 {
		c.debug.Store(flags[0])
	}
}

// report sends a diagnostic record when debug is on at call time.
// Observational only: it never changes what the caller receives.
func (c *Client) report(method, url string, status int, body, message string) {
	if !c.debug.Load() {
		return
	}
	c.reporter.Report(debug.NewReport(method, url, status, body, message))
}
