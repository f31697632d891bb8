package transport_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/httpkit/httpc/internal/httpc"
	"github.com/httpkit/httpc/internal/transport"
)

func TestFastRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q", r.Method)
		}
		if r.Header.Get("X-Token") != "tkn" {
			t.Errorf("X-Token = %q", r.Header.Get("X-Token"))
		}
		b, _ := io.ReadAll(r.Body)
		if string(b) != "payload" {
			t.Errorf("body = %q", b)
		}
		w.Header().Set("X-Served-By", "test")
		w.WriteHeader(http.StatusAccepted)
		io.WriteString(w, "accepted")
	}))
	defer srv.Close()

	tr := new(transport.Fast)
	defer tr.Close()
	resp, err := tr.RoundTrip(context.Background(), &httpc.Request{
		Method: http.MethodPost,
		URL:    srv.URL,
		Body:   "payload",
		Header: http.Header{"X-Token": {"tkn"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted || resp.Status != "202 Accepted" {
		t.Errorf("status = %d %q", resp.StatusCode, resp.Status)
	}
	if resp.Header.Get("X-Served-By") != "test" {
		t.Errorf("X-Served-By = %q", resp.Header.Get("X-Served-By"))
	}
	// the body must stay readable after the pooled objects went back
	time.Sleep(10 * time.Millisecond)
	b, err := io.ReadAll(resp.Body)
	if err != nil || string(b) != "accepted" {
		t.Errorf("body = %q, %v", b, err)
	}
}

func TestFastStreamedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		if string(b) != "streamed" {
			t.Errorf("server read %q", b)
		}
	}))
	defer srv.Close()

	tr := new(transport.Fast)
	defer tr.Close()
	resp, err := tr.RoundTrip(context.Background(), &httpc.Request{
		Method: http.MethodPost,
		URL:    srv.URL,
		Body:   struct{ io.Reader }{strings.NewReader("streamed")},
	})
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
}

func TestFastContentLengthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		if r.ContentLength != 7 {
			t.Errorf("server saw ContentLength %d", r.ContentLength)
		}
		if string(b) != "oneshot" {
			t.Errorf("server read %q", b)
		}
	}))
	defer srv.Close()

	tr := new(transport.Fast)
	defer tr.Close()
	// a bare reader has unknown length, the header supplies it
	resp, err := tr.RoundTrip(context.Background(), &httpc.Request{
		Method: http.MethodPost,
		URL:    srv.URL,
		Body:   struct{ io.Reader }{strings.NewReader("oneshot")},
		Header: http.Header{"Content-Length": {"7"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
}

func TestFastContentLengthConflict(t *testing.T) {
	var served bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = true
	}))
	defer srv.Close()

	tr := new(transport.Fast)
	defer tr.Close()
	_, err := tr.RoundTrip(context.Background(), &httpc.Request{
		Method: http.MethodPost,
		URL:    srv.URL,
		Body:   "abc",
		Header: http.Header{"Content-Length": {"999"}},
	})
	if err == nil || !strings.Contains(err.Error(), "content-length") {
		t.Fatalf("RoundTrip = %v, want content-length conflict", err)
	}
	if served {
		t.Error("conflicting request still reached the server")
	}
}

func TestFastContextCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	tr := new(transport.Fast)
	defer tr.Close()
	if _, err := tr.RoundTrip(ctx, &httpc.Request{URL: srv.URL}); !errors.Is(err, context.Canceled) {
		t.Errorf("RoundTrip = %v, want context.Canceled", err)
	}
}

func TestFastDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	tr := new(transport.Fast)
	defer tr.Close()
	if _, err := tr.RoundTrip(ctx, &httpc.Request{URL: srv.URL}); err == nil {
		t.Error("RoundTrip succeeded past the deadline")
	}
}

func TestFastClosed(t *testing.T) {
	tr := new(transport.Fast)
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.RoundTrip(context.Background(), &httpc.Request{URL: "http://example.com/"}); !errors.Is(err, httpc.ErrClosed) {
		t.Errorf("RoundTrip = %v, want ErrClosed", err)
	}
}

func TestFastConfig(t *testing.T) {
	tr := new(transport.Fast)
	cfg := tr.Config()
	if cfg == nil {
		t.Fatal("Config is nil")
	}
	if tr.Config() != cfg {
		t.Error("Config pointer is not stable")
	}
}
