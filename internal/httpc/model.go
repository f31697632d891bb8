package httpc

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/httpkit/httpc/internal/header"
)

// Transport performs a single HTTP exchange for an already normalized
// request. Connection management, TLS, proxies, redirects and timeouts all
// belong to implementations; callers treat the transport as opaque.
type Transport interface {
	RoundTrip(ctx context.Context, r *Request) (*Response, error)
	Close() error
}

// ConfiguredTransport additionally carries client configuration. A
// delegating client aliases the returned Config instead of copying it, so
// reads and writes through either handle observe the same state.
type ConfiguredTransport interface {
	Transport
	Config() *Config
}

// Config is the mutable per-client state consulted when a request is
// normalized.
type Config struct {
	// BaseAddress resolves absent and relative request targets. It must be
	// absolute; nil means no base is configured.
	BaseAddress *url.URL

	// DefaultHeaders are merged into every outgoing request after its target
	// is resolved. Merging only appends, caller fields are never overwritten.
	DefaultHeaders *header.Set
}

type Request struct {
	Method string
	URL    string
	Body   interface{}
	Header http.Header
}

type Response struct {
	Proto      string
	Status     string
	StatusCode int
	Header     http.Header

	ContentLength int64
	Body          io.ReadCloser
}
