package internal

import (
	"context"
	"net/http"
	"net/url"

	"github.com/httpkit/httpc/internal/header"
	"github.com/httpkit/httpc/internal/httpc"
	"github.com/httpkit/httpc/internal/transport"
)

// OwnedClient keeps its own base address and default headers and owns its
// transport outright: Close always closes the transport. The zero value is
// usable and sends through [transport.Default].
type OwnedClient struct {
	core
	cfg httpc.Config

	// set at construction, nil for the zero value
	transport httpc.Transport
}

// New returns a client owning a fresh [transport.Net].
func New() *OwnedClient {
	return &OwnedClient{transport: new(transport.Net)}
}

// NewOwned returns a client that adopts t and closes it on Close. A nil t
// leaves the client on [transport.Default].
func NewOwned(t httpc.Transport) *OwnedClient {
	return &OwnedClient{transport: t}
}

func (c *OwnedClient) BaseAddress() *url.URL { return c.cfg.BaseAddress }

func (c *OwnedClient) SetBaseAddress(u *url.URL) error {
	return setBase(&c.cfg.BaseAddress, u)
}

func (c *OwnedClient) DefaultHeaders() *header.Set {
	if c.cfg.DefaultHeaders == nil {
		c.cfg.DefaultHeaders = new(header.Set)
	}
	return c.cfg.DefaultHeaders
}

func (c *OwnedClient) Get(ctx context.Context, target string) (*httpc.Response, error) {
	return c.Send(ctx, &httpc.Request{Method: http.MethodGet, URL: target})
}

func (c *OwnedClient) Send(ctx context.Context, req *httpc.Request) (*httpc.Response, error) {
	return c.send(ctx, req, &c.cfg, c.roundTripper())
}

func (c *OwnedClient) roundTripper() httpc.Transport {
	if c.transport != nil {
		return c.transport
	}
	return transport.Default
}

// Close marks the client unusable and closes the owned transport. Calling it
// again is a no-op. The zero value's shared default transport stays open.
func (c *OwnedClient) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.transport != nil {
		return c.transport.Close()
	}
	return nil
}
