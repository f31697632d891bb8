package middleware

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/httpkit/httpc"
)

// RequestIDHeader is the field RequestID fills in.
const RequestIDHeader = "X-Request-ID"

// RequestID stamps every request without an X-Request-ID header with a
// fresh random UUID. A value chosen by the caller is kept, whatever
// spelling it is stored under.
func RequestID() httpc.Middleware {
	return func(next httpc.Handler) httpc.Handler {
		return func(ctx context.Context, req *httpc.Request) (*httpc.Response, error) {
			if !hasRequestID(req.Header) {
				if req.Header == nil {
					req.Header = make(httpc.Header)
				}
				req.Header.Set(RequestIDHeader, uuid.NewString())
			}
			return next(ctx, req)
		}
	}
}

// hasRequestID scans the raw map keys. Header.Get sees only the canonical
// spelling and would miss an id written into the map directly.
func hasRequestID(h httpc.Header) bool {
	for k, vv := range h {
		if len(vv) != 0 && strings.EqualFold(k, RequestIDHeader) {
			return true
		}
	}
	return false
}
