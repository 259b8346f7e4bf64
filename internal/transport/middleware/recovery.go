package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/tarsojabbes/science/pkg/ctxutil"
)

// Recovery converts a handler panic into a logged 500 tagged with the
// request ID. http.ErrAbortHandler passes through so net/http can abort the
// connection.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				switch rec := recover(); rec {
				case nil:
				case http.ErrAbortHandler:
					panic(rec)
				default:
					logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
						slog.Any("panic", rec),
						slog.String("route", r.Method+" "+r.URL.Path),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
						slog.String("stack", string(debug.Stack())),
					)
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
