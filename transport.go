package httpc

import (
	"github.com/httpkit/httpc/internal"
	"github.com/httpkit/httpc/internal/httpc"
	"github.com/httpkit/httpc/internal/transport"
)

// Transport performs a single HTTP exchange for a normalized request.
type Transport = httpc.Transport

// ConfiguredTransport is a transport that also carries client configuration,
// the shape [NewDelegating] wraps.
type ConfiguredTransport = httpc.ConfiguredTransport

// NetTransport is backed by [net/http.Client].
type NetTransport = transport.Net

// FastTransport is backed by [fasthttp.Client].
type FastTransport = transport.Fast

// DefaultTransport serves zero-value owned clients. It is shared and is
// never closed by a client.
var DefaultTransport = transport.Default

// New returns a client that owns a fresh net/http backed transport.
func New() *OwnedClient { return internal.New() }

// NewWithTransport returns a client that adopts t: closing the client closes
// t. A nil t leaves the client on [DefaultTransport], which stays open.
func NewWithTransport(t Transport) *OwnedClient { return internal.NewOwned(t) }

// NewDelegating returns a client around an externally configured transport.
// The base address and default headers live in t's Config; the client reads
// and writes them there instead of keeping a copy. With closeTransport the
// client closes t when it is itself closed.
func NewDelegating(t ConfiguredTransport, closeTransport bool) *DelegatingClient {
	return internal.NewDelegating(t, closeTransport)
}
