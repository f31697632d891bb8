package middleware

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/httpkit/httpc"
)

// RateLimit makes every request wait for a token from l before it reaches
// the transport. Waiting ends early when the context is done. A nil limiter
// disables the middleware.
func RateLimit(l *rate.Limiter) httpc.Middleware {
	return func(next httpc.Handler) httpc.Handler {
		return func(ctx context.Context, req *httpc.Request) (*httpc.Response, error) {
			if l != nil {
				if err := l.Wait(ctx); err != nil {
					return nil, err
				}
			}
			return next(ctx, req)
		}
	}
}
