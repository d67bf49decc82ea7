package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Tickatch/log-service/internal/domain"
)

// Identity extracts the gateway-provided actor identity headers and attaches
// them to the request context as an explicit value. Authentication itself
// happens upstream; an absent or malformed header simply leaves the context
// without an identity.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get("X-User-Id"); raw != "" {
			if userID, err := uuid.Parse(raw); err == nil {
				actorType := r.Header.Get("X-Actor-Type")
				if actorType == "" {
					actorType = "USER"
				}
				ctx := domain.WithIdentity(r.Context(), domain.Identity{
					UserID:    userID,
					ActorType: actorType,
				})
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}
