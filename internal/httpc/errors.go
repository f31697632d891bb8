package httpc

import "errors"

var (
	// ErrNoBaseAddress is returned when a request's target address is absent
	// or relative while the client has no absolute base address to resolve
	// it against. The request is left untouched.
	ErrNoBaseAddress = errors.New("httpc: request URL is not absolute and no base address is configured")

	// ErrNotAbsolute is returned when a relative URL is offered as a base
	// address.
	ErrNotAbsolute = errors.New("httpc: base address must be an absolute URL")

	// ErrClosed is returned for operations on a closed client or transport.
	ErrClosed = errors.New("httpc: use of closed client or transport")

	// ErrNoBody is returned by [Response.JSON] when the response carries no
	// body to decode.
	ErrNoBody = errors.New("httpc: response has no body")
)
