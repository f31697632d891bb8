// package httpc contains the request, response and transport types, which
// are meant to be exported. the package name is deliberately the same as the
// top level package name so that IDEs and code editors pick the types up
// under the name users see.
//
// the package also aliases a few names from the standard library to avoid
// annoying imports
package httpc

import "net/http"

// Header holds request header fields keyed the way [net/http] keys them.
type Header = http.Header

// NoBody is an explicitly empty request body.
var NoBody = http.NoBody
