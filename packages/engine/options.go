package engine

import "time"

// Recognized Options keys. Unknown keys are ignored; values of the wrong
// type are ignored too rather than failing the request.
const (
	OptionURL             = "url"
	OptionMethod          = "method"
	OptionProxyURL        = "proxy_url"
	OptionHeaders         = "headers"
	OptionTimeout         = "timeout"
	OptionFollowRedirects = "follow_redirects"
)

// resolve copies req and folds its Options into the constructed fields.
// Options win over whatever the client layer built (last writer wins).
func (e *HTTPEngine) resolve(req *Request) (resolved *Request, timeout time.Duration, follow bool) {
	resolved = &Request{
		URL:      req.URL,
		Method:   req.Method,
		Body:     req.Body,
		ProxyURL: req.ProxyURL,
		Options:  req.Options,
		Headers:  make(map[string]string, len(req.Headers)),
	}
	for k, v := range req.Headers {
		resolved.Headers[k] = v
	}

	timeout = e.timeout
	follow = e.followRedirect

	for k, v := range req.Options {
		switch k {
		case OptionURL:
			if s, ok := v.(string); ok {
				resolved.URL = s
			}
		case OptionMethod:
			if s, ok := v.(string); ok {
				resolved.Method = s
			}
		case OptionProxyURL:
			if s, ok := v.(string); ok {
				resolved.ProxyURL = s
			}
		case OptionHeaders:
			if m, ok := v.(map[string]string); ok {
				for hk, hv := range m {
					resolved.Headers[hk] = hv
				}
			}
		case OptionTimeout:
			switch d := v.(type) {
			case time.Duration:
				timeout = d
			case int:
				// plain integers are milliseconds
				timeout = time.Duration(d) * time.Millisecond
			}
		case OptionFollowRedirects:
			if b, ok := v.(bool); ok {
				follow = b
			}
		}
	}

	return resolved, timeout, follow
}
