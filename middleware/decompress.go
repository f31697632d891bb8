package middleware

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/httpkit/httpc"
)

const acceptEncoding = "gzip, zstd, br"

// Decompress negotiates compressed transfer and transparently decodes the
// response body. Requests without an Accept-Encoding header get one
// offering gzip, zstd and brotli; a caller-chosen value is kept, so callers
// that negotiate themselves also receive the body undecoded. Decoded
// responses lose their Content-Encoding and Content-Length fields and
// report an unknown length. Unknown codings pass through untouched.
func Decompress() httpc.Middleware {
	return func(next httpc.Handler) httpc.Handler {
		return func(ctx context.Context, req *httpc.Request) (*httpc.Response, error) {
			if req.Header == nil {
				req.Header = make(httpc.Header)
			}
			negotiated := req.Header.Get("Accept-Encoding") == ""
			if negotiated {
				req.Header.Set("Accept-Encoding", acceptEncoding)
			}
			resp, err := next(ctx, req)
			if err != nil {
				return nil, err
			}
			if !negotiated {
				return resp, nil
			}
			if err := decode(resp); err != nil {
				return nil, err
			}
			return resp, nil
		}
	}
}

func decode(resp *httpc.Response) error {
	if resp.Body == nil {
		return nil
	}
	coding := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))
	orig := resp.Body
	var decoded io.ReadCloser
	switch coding {
	case "", "identity":
		return nil
	case "gzip":
		zr, err := gzip.NewReader(orig)
		if err != nil {
			orig.Close()
			return fmt.Errorf("middleware: gzip: %w", err)
		}
		decoded = bodyCloser{zr, func() error {
			err := zr.Close()
			if cerr := orig.Close(); err == nil {
				err = cerr
			}
			return err
		}}
	case "zstd":
		zr, err := zstd.NewReader(orig)
		if err != nil {
			orig.Close()
			return fmt.Errorf("middleware: zstd: %w", err)
		}
		decoded = bodyCloser{zr.IOReadCloser(), func() error {
			zr.Close()
			return orig.Close()
		}}
	case "br":
		decoded = bodyCloser{brotli.NewReader(orig), orig.Close}
	default:
		return nil
	}
	resp.Body = decoded
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	return nil
}

type bodyCloser struct {
	io.Reader
	close func() error
}

func (b bodyCloser) Close() error { return b.close() }
