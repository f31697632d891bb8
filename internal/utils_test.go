package internal_test

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/httpkit/httpc/internal/httpc"
)

// TestTransport records the last request it saw and answers with a canned
// response. It implements internal's transport contracts.
type TestTransport struct {
	mu     sync.Mutex
	cfg    httpc.Config
	calls  int
	got    *httpc.Request
	resp   *httpc.Response
	err    error
	closed bool
}

// RoundTrip implements httpc.Transport.
func (t *TestTransport) RoundTrip(ctx context.Context, r *httpc.Request) (*httpc.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, httpc.ErrClosed
	}
	t.calls++
	t.got = r
	if t.err != nil {
		return nil, t.err
	}
	if t.resp != nil {
		return t.resp, nil
	}
	return &httpc.Response{
		Proto: "HTTP/1.1", Status: "200 OK", StatusCode: http.StatusOK,
		Header: make(http.Header), Body: http.NoBody,
	}, nil
}

// Close implements httpc.Transport.
func (t *TestTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

// Config implements httpc.ConfiguredTransport.
func (t *TestTransport) Config() *httpc.Config { return &t.cfg }

func (t *TestTransport) snapshot() (calls int, got *httpc.Request) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls, t.got
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return u
}
