package internal

import (
	"context"
	"net/url"
	"sync/atomic"

	"github.com/httpkit/httpc/internal/header"
	"github.com/httpkit/httpc/internal/httpc"
)

// Handler sends a normalized request and reports the outcome.
type Handler = func(ctx context.Context, req *httpc.Request) (*httpc.Response, error)

// Middleware wraps a [Handler] with pre- and post-processing.
type Middleware func(next Handler) Handler

// Client is what every client variant provides: a mutable base address and
// default header set consulted while requests are normalized, request
// dispatch, middleware installation and release of the underlying transport.
type Client interface {
	BaseAddress() *url.URL
	SetBaseAddress(u *url.URL) error
	DefaultHeaders() *header.Set

	Get(ctx context.Context, target string) (*httpc.Response, error)
	Send(ctx context.Context, req *httpc.Request) (*httpc.Response, error)

	Use(mws ...Middleware)
	Close() error
}

var (
	_ Client = (*OwnedClient)(nil)
	_ Client = (*DelegatingClient)(nil)
)

// core carries the pieces shared by the client variants.
type core struct {
	mws    []Middleware
	closed atomic.Bool
}

// Use appends mws to the middleware chain. Middlewares run in the order
// they were added, the first added wrapping all the rest.
func (c *core) Use(mws ...Middleware) {
	c.mws = append(c.mws, mws...)
}

// send normalizes req against cfg and runs it through the middleware chain
// into t. cfg is read exactly once, so configuration swapped mid-flight
// never affects a request already past this point.
func (c *core) send(ctx context.Context, req *httpc.Request, cfg *httpc.Config, t httpc.Transport) (*httpc.Response, error) {
	if c.closed.Load() {
		return nil, httpc.ErrClosed
	}
	base, defaults := cfg.BaseAddress, cfg.DefaultHeaders
	if err := req.Normalize(base, defaults); err != nil {
		return nil, err
	}
	var next Handler = t.RoundTrip
	for i := len(c.mws) - 1; i >= 0; i-- {
		next = c.mws[i](next)
	}
	return next(ctx, req)
}

// setBase validates u before installing it. nil clears the base address.
func setBase(dst **url.URL, u *url.URL) error {
	if u != nil && !u.IsAbs() {
		return httpc.ErrNotAbsolute
	}
	*dst = u
	return nil
}
