// package transport contains the built-in [httpc.Transport] implementations.
//
// requests arrive already normalized: the target address is absolute and the
// client's default headers are merged in. everything below that line, that
// is connection pooling, TLS, proxies, redirects and protocol negotiation,
// is delegated to the wrapped library and deliberately not configurable
// through the client.
//
// both implementations carry a [httpc.Config] so they can sit behind a
// delegating client.
package transport

import (
	"github.com/httpkit/httpc/internal/httpc"
)

// Default is the transport zero-value owned clients send through. It is
// shared and therefore never closed by a client.
var Default httpc.Transport = new(Net)
