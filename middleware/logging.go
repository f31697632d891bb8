package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/httpkit/httpc"
)

// Logging emits one structured record per request: method, url, elapsed
// time and either the status code or the error. A nil logger means
// [slog.Default].
func Logging(l *slog.Logger) httpc.Middleware {
	return func(next httpc.Handler) httpc.Handler {
		return func(ctx context.Context, req *httpc.Request) (*httpc.Response, error) {
			logger := l
			if logger == nil {
				logger = slog.Default()
			}
			method := req.Method
			if method == "" {
				method = http.MethodGet
			}
			start := time.Now()
			resp, err := next(ctx, req)
			if err != nil {
				logger.LogAttrs(ctx, slog.LevelError, "request failed",
					slog.String("method", method),
					slog.String("url", req.URL),
					slog.Duration("elapsed", time.Since(start)),
					slog.Any("error", err),
				)
				return nil, err
			}
			logger.LogAttrs(ctx, slog.LevelInfo, "request done",
				slog.String("method", method),
				slog.String("url", req.URL),
				slog.Duration("elapsed", time.Since(start)),
				slog.Int("status", resp.StatusCode),
			)
			return resp, nil
		}
	}
}
