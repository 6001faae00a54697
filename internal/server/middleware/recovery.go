package middleware

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/FlazeIGuess/unitune-worker/internal/observability"
)

// PanicResponder renders the generic 500 body after a recovered panic.
type PanicResponder func(w http.ResponseWriter, r *http.Request)

// Recovery recovers from handler panics, logs the stack and serves a generic
// error page. Panic details never reach the response body.
func Recovery(respond PanicResponder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					RecordPanic()

					if observability.ServerLogger != nil {
						observability.ServerLogger.Error("Recovered from panic",
							zap.Any("panic", err),
							zap.String("path", r.URL.Path),
							zap.String("requestID", GetRequestID(r.Context())),
							zap.ByteString("stack", debug.Stack()),
						)
					}

					if respond != nil {
						respond(w, r)
						return
					}
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
