package httpc

import (
	"net/http"

	"github.com/httpkit/httpc/internal"
	"github.com/httpkit/httpc/internal/header"
	"github.com/httpkit/httpc/internal/httpc"
)

// Client is the surface shared by both client variants.
type Client = internal.Client

// OwnedClient owns its transport and its configuration. The zero value is
// usable and sends through [DefaultTransport].
type OwnedClient = internal.OwnedClient

// DelegatingClient borrows configuration from the transport it wraps.
type DelegatingClient = internal.DelegatingClient

type Request = httpc.Request
type Response = httpc.Response
type Config = httpc.Config

// HeaderSet holds a client's default headers in insertion order.
type HeaderSet = header.Set

type Header = http.Header

type Handler = internal.Handler
type Middleware = internal.Middleware

var NoBody = http.NoBody
