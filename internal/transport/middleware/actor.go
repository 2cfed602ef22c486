package middleware

import (
	"net/http"
	"strings"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/pkg/ctxutil"
)

const (
	ActorRoleHeader = "X-Actor-Role"
	ActorNameHeader = "X-Actor-Name"
)

// Actor copies the declared role and display name from request headers into
// the context. Requests without a role pass through anonymous; handlers
// decide whether a role is required.
func Actor() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := strings.ToLower(strings.TrimSpace(r.Header.Get(ActorRoleHeader)))
			if role == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx := ctxutil.WithActor(r.Context(), ctxutil.Actor{
				Role: role,
				Name: strings.TrimSpace(r.Header.Get(ActorNameHeader)),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
