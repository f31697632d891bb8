package httpc

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/httpkit/httpc/internal/header"
)

// Normalize rewrites r in place so a transport can send it as-is: the target
// address is resolved against base and defaults are merged into r's headers.
// Resolution happens first; when it fails, r is left completely untouched.
//
// The target is resolved as follows:
//   - an empty URL becomes the base address itself
//   - an absolute URL is kept byte for byte
//   - a relative URL is resolved against the base address
//
// Both of the latter need a usable base: non-nil and absolute. Without one,
// ErrNoBaseAddress is returned.
func (r *Request) Normalize(base *url.URL, defaults *header.Set) error {
	if err := r.resolveURL(base); err != nil {
		return err
	}
	if defaults.Len() == 0 {
		return nil
	}
	if r.Header == nil {
		r.Header = make(http.Header, defaults.Len())
	}
	// merging appends only, fields set by the caller always survive
	defaults.Each(r.Header.Add)
	return nil
}

func (r *Request) resolveURL(base *url.URL) error {
	if r.URL == "" {
		if !usableBase(base) {
			return ErrNoBaseAddress
		}
		r.URL = base.String()
		return nil
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return err
	}
	if u.IsAbs() && !fileQuirk(u, r.URL) {
		return nil
	}
	if !usableBase(base) {
		return ErrNoBaseAddress
	}
	r.URL = base.ResolveReference(u).String()
	return nil
}

// some platforms parse a rooted path like "/users/5" as an absolute
// file-scheme address. such a target is really server-relative, so it joins
// the base address like any other relative reference.
func fileQuirk(u *url.URL, raw string) bool {
	return strings.EqualFold(u.Scheme, "file") && strings.HasPrefix(raw, "/")
}

func usableBase(base *url.URL) bool {
	return base != nil && base.IsAbs()
}
