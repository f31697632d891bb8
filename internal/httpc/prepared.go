package httpc

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
)

// BodySource resolves r.Body into a body factory and a content length, in
// the manner of [net/http.NewRequest]: the common in-memory types yield a
// replayable factory and an exact length, any other [io.Reader] yields a
// factory that works exactly once. A nil factory means the request carries
// no body. Length -1 means unknown.
func (r *Request) BodySource() (getBody func() (io.ReadCloser, error), contentLength int64, err error) {
	if r.Body == nil {
		return nil, 0, nil
	}
	contentLength = -1
	switch b := r.Body.(type) {
	case string:
		contentLength = int64(len(b))
		getBody = func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(b)), nil
		}
	case []byte:
		contentLength = int64(len(b))
		getBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(b)), nil
		}
	case *bytes.Buffer: // below is taken from http.NewRequest
		contentLength = int64(b.Len())
		buf := b.Bytes()
		getBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(buf)), nil
		}
	case *bytes.Reader:
		contentLength = int64(b.Len())
		snapshot := *b
		getBody = func() (io.ReadCloser, error) {
			r := snapshot
			return io.NopCloser(&r), nil
		}
	case *strings.Reader:
		contentLength = int64(b.Len())
		snapshot := *b
		getBody = func() (io.ReadCloser, error) {
			r := snapshot
			return io.NopCloser(&r), nil
		}
	case io.Reader:
		if sizer, ok := b.(interface{ Size() int64 }); ok {
			contentLength = sizer.Size()
		}
		cb, ok := b.(io.ReadCloser)
		if !ok {
			cb = io.NopCloser(b)
		}
		once := uint32(0)
		getBody = func() (io.ReadCloser, error) {
			if atomic.CompareAndSwapUint32(&once, 0, 1) {
				return cb, nil
			}
			return nil, http.ErrBodyReadAfterClose
		}
	default:
		return nil, 0, fmt.Errorf("unsupported body type: %T", r.Body)
	}
	return getBody, contentLength, nil
}
