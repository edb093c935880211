package client

import "fmt"

// Config holds client-level defaults applied to every request. All
// fields except Debug are immutable after the client is built.
type Config struct {
	// DefaultHeaders are merged into every request, per-call headers
	// winning on collision.
	DefaultHeaders map[string]string
	Proxy          *ProxySpec
	// BaseURL is prefixed to every request URL by plain concatenation.
	BaseURL string
	// Debug enables diagnostic reporting of failed requests. Verbs can
	// toggle it later for the whole client instance.
	Debug bool
}

// ProxySpec describes an outbound proxy. The connection string is only
// built when Host, Port and Scheme are all present; credentials must be
// supplied both-or-neither.
type ProxySpec struct {
	Host     string
	Port     int
	Scheme   string
	Username string
	Password string
}

// Validate rejects specs that cannot produce a well-formed proxy URL.
// A half-supplied credential pair would otherwise emit a malformed
// connection string, so it fails here instead.
func (p *ProxySpec) Validate() error {
	if p == nil {
		return nil
	}
	if (p.Username == "") != (p.Password == "") {
		return fmt.Errorf("proxy credentials: username and password must be supplied together")
	}
	if p.Scheme != "" && p.Scheme != "http" && p.Scheme != "https" {
		return fmt.Errorf("unsupported proxy scheme: %s (only http and https are allowed)", p.Scheme)
	}
	return nil
}

// URL builds the proxy connection string. ok is false when any of host,
// port or scheme is missing, in which case no proxy is used.
func (p *ProxySpec) URL() (url string, ok bool) {
	if p == nil || p.Host == "" || p.Port == 0 || p.Scheme == "" {
		return "", false
	}
	if p.Username == "" && p.Password == "" {
		return fmt.Sprintf("%s://%s:%d", p.Scheme, p.Host, p.Port), true
	}
	return fmt.Sprintf("%s://%s:%s@%s:%d", p.Scheme, p.Username, p.Password, p.Host, p.Port), true
}
