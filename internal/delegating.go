package internal

import (
	"context"
	"net/http"
	"net/url"

	"github.com/httpkit/httpc/internal/header"
	"github.com/httpkit/httpc/internal/httpc"
)

// DelegatingClient wraps an externally owned transport and proxies its
// configuration: base address and default headers live in the wrapped
// transport's Config, so mutation through the client and through the
// transport observe the same state.
type DelegatingClient struct {
	core
	transport httpc.ConfiguredTransport

	// cfg aliases transport.Config(), never a copy
	cfg *httpc.Config

	// fixed at construction, consulted only by Close
	closeTransport bool
}

// NewDelegating returns a client sending through t. With closeTransport,
// closing the client also closes t; otherwise t outlives the client.
func NewDelegating(t httpc.ConfiguredTransport, closeTransport bool) *DelegatingClient {
	return &DelegatingClient{transport: t, cfg: t.Config(), closeTransport: closeTransport}
}

func (c *DelegatingClient) BaseAddress() *url.URL { return c.cfg.BaseAddress }

func (c *DelegatingClient) SetBaseAddress(u *url.URL) error {
	return setBase(&c.cfg.BaseAddress, u)
}

func (c *DelegatingClient) DefaultHeaders() *header.Set {
	if c.cfg.DefaultHeaders == nil {
		c.cfg.DefaultHeaders = new(header.Set)
	}
	return c.cfg.DefaultHeaders
}

func (c *DelegatingClient) Get(ctx context.Context, target string) (*httpc.Response, error) {
	return c.Send(ctx, &httpc.Request{Method: http.MethodGet, URL: target})
}

func (c *DelegatingClient) Send(ctx context.Context, req *httpc.Request) (*httpc.Response, error) {
	return c.send(ctx, req, c.cfg, c.transport)
}

// Close marks the client unusable. The wrapped transport is closed only when
// the client was constructed to own it.
func (c *DelegatingClient) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.closeTransport {
		return c.transport.Close()
	}
	return nil
}
