package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

const panicBody = `{"error":"internal server error"}` + "\n"

// Recovery turns a panicking handler into a JSON 500. The panic value and
// stack are logged with the echoed request id and the declared role so a failed
// claim mutation can be traced back to its caller.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				attrs := []any{
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", w.Header().Get(RequestIDHeader)),
					slog.String("stack", string(debug.Stack())),
				}
				if role := r.Header.Get(ActorRoleHeader); role != "" {
					attrs = append(attrs, slog.String("actor_role", role))
				}
				logger.ErrorContext(r.Context(), "http.panic", attrs...)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(panicBody))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
