// package middleware contains ready-made [httpc.Middleware]. middlewares
// run between normalization and the transport, so they see requests with
// the target address resolved and the default headers already merged in.
//
// install them with Use on either client variant:
//
//	cl := httpc.New()
//	cl.Use(middleware.RequestID(), middleware.Logging(nil))
package middleware
