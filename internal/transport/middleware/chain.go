package middleware

import (
	"net/http"
	"slices"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one sees the request first.
// Nil entries are skipped; optional layers such as the rate limiter can be
// left unset by the caller.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			if mw != nil {
				h = mw(h)
			}
		}
		return h
	}
}
