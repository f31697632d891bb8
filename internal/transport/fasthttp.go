package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/valyala/fasthttp"

	"github.com/httpkit/httpc/internal/httpc"
)

// Fast sends requests through a [fasthttp.Client]. The zero value is usable.
// Response bodies are copied out of fasthttp's pooled buffers before the
// pooled objects are released, so they stay valid for as long as the caller
// needs them. Header names take fasthttp's own normalization on the wire.
type Fast struct {
	// Client performs the exchanges when non-nil.
	Client *fasthttp.Client

	cfg    httpc.Config
	closed atomic.Bool
}

var defaultFastClient fasthttp.Client

func (t *Fast) Config() *httpc.Config { return &t.cfg }

func (t *Fast) client() *fasthttp.Client {
	if t.Client != nil {
		return t.Client
	}
	return &defaultFastClient
}

func (t *Fast) RoundTrip(ctx context.Context, r *httpc.Request) (*httpc.Response, error) {
	if t.closed.Load() {
		return nil, httpc.ErrClosed
	}
	freq, fres := fasthttp.AcquireRequest(), fasthttp.AcquireResponse()
	if err := fillFastRequest(freq, r); err != nil {
		fasthttp.ReleaseRequest(freq)
		fasthttp.ReleaseResponse(fres)
		return nil, err
	}
	done := make(chan error, 1)
	go func() { done <- t.do(ctx, freq, fres) }()
	select {
	case err := <-done:
		if err != nil {
			fasthttp.ReleaseRequest(freq)
			fasthttp.ReleaseResponse(fres)
			return nil, err
		}
	case <-ctx.Done():
		// the exchange may still be running. freq and fres stay with the
		// goroutine and never go back to the pools.
		return nil, ctx.Err()
	}
	resp := readFastResponse(fres)
	fasthttp.ReleaseRequest(freq)
	fasthttp.ReleaseResponse(fres)
	return resp, nil
}

func (t *Fast) do(ctx context.Context, freq *fasthttp.Request, fres *fasthttp.Response) error {
	if d, ok := ctx.Deadline(); ok {
		return t.client().DoDeadline(freq, fres, d)
	}
	return t.client().Do(freq, fres)
}

// Close marks the transport unusable and releases idle connections held by
// the underlying client.
func (t *Fast) Close() error {
	if t.closed.CompareAndSwap(false, true) {
		t.client().CloseIdleConnections()
	}
	return nil
}

func fillFastRequest(freq *fasthttp.Request, r *httpc.Request) error {
	freq.SetRequestURI(r.URL)
	if r.Method != "" {
		freq.Header.SetMethod(r.Method)
	}
	var clHeader string
	for k, vv := range r.Header {
		switch strings.ToLower(k) {
		case "host":
			if len(vv) != 0 {
				freq.Header.SetHost(vv[0])
			}
		case "content-length":
			// reconciled with the body below
			if len(vv) != 0 {
				clHeader = vv[0]
			}
		default:
			for _, v := range vv {
				freq.Header.Add(k, v)
			}
		}
	}
	getBody, cl, err := r.BodySource()
	if err != nil {
		return err
	}
	if getBody == nil {
		return nil
	}
	if clHeader != "" {
		if v, perr := strconv.ParseInt(clHeader, 10, 64); perr == nil {
			if cl >= 0 && v != cl {
				return errContentLength
			}
			cl = v
		}
	}
	body, err := getBody()
	if err != nil {
		return err
	}
	freq.SetBodyStream(body, int(cl))
	return nil
}

func readFastResponse(fres *fasthttp.Response) *httpc.Response {
	h := make(http.Header)
	fres.Header.VisitAll(func(key, value []byte) {
		h.Add(string(key), string(value))
	})
	code := fres.StatusCode()
	cl := int64(fres.Header.ContentLength())
	if cl < 0 {
		cl = -1
	}
	body := append([]byte(nil), fres.Body()...)
	return &httpc.Response{
		Proto:         "HTTP/1.1",
		Status:        strconv.Itoa(code) + " " + fasthttp.StatusMessage(code),
		StatusCode:    code,
		Header:        h,
		ContentLength: cl,
		Body:          io.NopCloser(bytes.NewReader(body)),
	}
}
