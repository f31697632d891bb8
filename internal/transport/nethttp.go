package transport

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/httpkit/httpc/internal/httpc"
)

var errContentLength = errors.New("transport: content-length header conflicts with body size")

// Net sends requests through a [net/http.Client]. The zero value is usable
// and uses [http.DefaultClient]. Header names chosen by the caller reach the
// wire in their original spelling.
type Net struct {
	// Client performs the exchanges when non-nil.
	Client *http.Client

	cfg    httpc.Config
	closed atomic.Bool
}

func (t *Net) Config() *httpc.Config { return &t.cfg }

func (t *Net) client() *http.Client {
	if t.Client != nil {
		return t.Client
	}
	return http.DefaultClient
}

func (t *Net) RoundTrip(ctx context.Context, r *httpc.Request) (*httpc.Response, error) {
	if t.closed.Load() {
		return nil, httpc.ErrClosed
	}
	hr, err := newStdRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	res, err := t.client().Do(hr)
	if err != nil {
		return nil, err
	}
	return &httpc.Response{
		Proto:         res.Proto,
		Status:        res.Status,
		StatusCode:    res.StatusCode,
		Header:        res.Header,
		ContentLength: res.ContentLength,
		Body:          res.Body,
	}, nil
}

// Close marks the transport unusable and releases idle connections held by
// the underlying client.
func (t *Net) Close() error {
	if t.closed.CompareAndSwap(false, true) {
		t.client().CloseIdleConnections()
	}
	return nil
}

func newStdRequest(ctx context.Context, r *httpc.Request) (*http.Request, error) {
	getBody, cl, err := r.BodySource()
	if err != nil {
		return nil, err
	}
	hr, err := http.NewRequestWithContext(ctx, r.Method, r.URL, nil)
	if err != nil {
		return nil, err
	}
	if getBody != nil {
		body, err := getBody()
		if err != nil {
			return nil, err
		}
		hr.Body, hr.GetBody, hr.ContentLength = body, getBody, cl
	}
	// user defined headers have higher priority
	for k, vv := range r.Header {
		switch strings.ToLower(k) {
		case "host":
			if len(vv) != 0 {
				hr.Host = vv[0]
			}
		case "content-length":
			if len(vv) == 0 || hr.Body == nil {
				continue
			}
			v, perr := strconv.ParseInt(vv[0], 10, 64)
			if perr != nil {
				continue
			}
			if hr.ContentLength >= 0 && v != hr.ContentLength {
				return nil, errContentLength
			}
			hr.ContentLength = v
		default:
			hr.Header[k] = append([]string(nil), vv...)
		}
	}
	return hr, nil
}
