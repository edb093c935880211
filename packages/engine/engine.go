package engine

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRedirects is the maximum number of redirects to follow
	DefaultMaxRedirects = 10
	// DefaultMaxIdleConns is the maximum number of idle connections in the pool
	DefaultMaxIdleConns = 100
	// DefaultMaxIdleConnsPerHost is the maximum number of idle connections per host
	DefaultMaxIdleConnsPerHost = 10
	// DefaultIdleConnTimeout is how long idle connections stay in the pool
	DefaultIdleConnTimeout = 90 * time.Second
)

// Request is the fully resolved call handed to an engine: URL, method,
// headers and proxy URL have already been merged by the client layer.
// Options may override any of the constructed fields; the engine applies
// them last (last writer wins) with engine-defined key semantics.
type Request struct {
	URL      string
	Method   string
	Headers  map[string]string
	Body     string
	ProxyURL string
	Options  map[string]any
}

// Result is the raw transport outcome. OK is the engine's own success
// classification; the body is always delivered fully read, as text.
type Result struct {
	OK         bool
	StatusCode int
	Body       string
	Headers    map[string]string
	// Request echoes the request actually sent, after Options were applied.
	Request *Request
}

// Engine executes one resolved request and returns the raw outcome.
// An error return means the transport itself failed (DNS, connect,
// timeout); a non-success HTTP status is not an error at this level.
type Engine interface {
	Do(ctx context.Context, req *Request) (*Result, error)
}

// HTTPEngine is the default Engine backed by net/http with pooled
// transports. One underlying http.Client is kept per (proxy, redirect
// policy) pair so per-request proxy overrides don't defeat pooling.
type HTTPEngine struct {
	timeout        time.Duration
	followRedirect bool
	maxRedirects   int
	validateSSL    bool

	mu      sync.Mutex
	clients map[clientKey]*http.Client
}

type clientKey struct {
	proxyURL string
	follow   bool
}

type Option func(*HTTPEngine)

func New(opts ...Option) *HTTPEngine {
	e := &HTTPEngine{
		timeout:        DefaultTimeout,
		followRedirect: true,
		maxRedirects:   DefaultMaxRedirects,
		validateSSL:    true,
		clients:        make(map[clientKey]*http.Client),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func WithTimeout(d time.Duration) Option {
	return func(e *HTTPEngine) {
		e.timeout = d
	}
}

func WithFollowRedirects(follow bool) Option {
	return func(e *HTTPEngine) {
		e.followRedirect = follow
	}
}

func WithMaxRedirects(max int) Option {
	return func(e *HTTPEngine) {
		e.maxRedirects = max
	}
}

// WithValidateSSL enables or disables TLS certificate validation
func WithValidateSSL(validate bool) Option {
	return func(e *HTTPEngine) {
		e.validateSSL = validate
	}
}

func (e *HTTPEngine) Do(ctx context.Context, req *Request) (*Result, error) {
	resolved, timeout, follow := e.resolve(req)

	client, err := e.clientFor(resolved.ProxyURL, follow)
	if err != nil {
		return nil, err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var body io.Reader
	if resolved.Body != "" {
		body = strings.NewReader(resolved.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, resolved.Method, resolved.URL, body)
	if err != nil {
		return nil, err
	}

	for k, v := range resolved.Headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(httpResp.Header))
	for k := range httpResp.Header {
		headers[k] = httpResp.Header.Get(k)
	}

	return &Result{
		OK:         httpResp.StatusCode >= 200 && httpResp.StatusCode < 300,
		StatusCode: httpResp.StatusCode,
		Body:       string(raw),
		Headers:    headers,
		Request:    resolved,
	}, nil
}

// clientFor returns the pooled http.Client for a proxy/redirect combination,
// building it on first use.
func (e *HTTPEngine) clientFor(proxyURL string, follow bool) (*http.Client, error) {
	key := clientKey{proxyURL: proxyURL, follow: follow}

	e.mu.Lock()
	defer e.mu.Unlock()

	if client, ok := e.clients[key]; ok {
		return client, nil
	}

	transport := &http.Transport{
		MaxIdleConns:        DefaultMaxIdleConns,
		MaxIdleConnsPerHost: DefaultMaxIdleConnsPerHost,
		IdleConnTimeout:     DefaultIdleConnTimeout,
	}

	if !e.validateSSL {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	if proxyURL != "" {
		parsed, err := neturl.Parse(proxyURL)
		if err != nil {
			return nil, err
		}
		transport.Proxy = http.ProxyURL(parsed)
	}

	redirectPolicy := func(req *http.Request, via []*http.Request) error {
		if !follow {
			return http.ErrUseLastResponse
		}
		if len(via) >= e.maxRedirects {
			return http.ErrUseLastResponse
		}
		return nil
	}

	client := &http.Client{
		Transport:     transport,
		CheckRedirect: redirectPolicy,
	}
	e.clients[key] = client
	return client, nil
}
