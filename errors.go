package httpc

import (
	"github.com/httpkit/httpc/internal/header"
	"github.com/httpkit/httpc/internal/httpc"
)

var (
	// ErrNoBaseAddress reports a request whose target is absent or relative
	// while no base address is configured. The request is left untouched.
	ErrNoBaseAddress = httpc.ErrNoBaseAddress

	// ErrNotAbsolute reports a relative URL offered as a base address.
	ErrNotAbsolute = httpc.ErrNotAbsolute

	// ErrClosed reports an operation on a closed client or transport.
	ErrClosed = httpc.ErrClosed

	// ErrNoBody reports a JSON decode on a response without a body.
	ErrNoBody = httpc.ErrNoBody

	// ErrInvalidHeaderName and ErrInvalidHeaderValue report fields rejected
	// by the validating [HeaderSet] setters.
	ErrInvalidHeaderName  = header.ErrInvalidName
	ErrInvalidHeaderValue = header.ErrInvalidValue
)
