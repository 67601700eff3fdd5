// Package httputil provides HTTP utilities for standardized request/response
// handling.
//
// # Response Helpers
//
// JSON and HTML responses:
//
//	httputil.WriteJSON(w, http.StatusOK, data)
//	httputil.WriteHTML(w, http.StatusOK, page)
//
// Error responses:
//
//	httputil.WriteNotFoundError(w, "article not found")
//	httputil.WriteInternalError(w, err)
//
// # Middleware
//
//	httputil.Chain(
//		httputil.RequestIDMiddleware,
//		httputil.LoggingMiddleware(logger),
//		httputil.RecoveryMiddleware(logger),
//	)
package httputil
