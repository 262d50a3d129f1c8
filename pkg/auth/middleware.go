package auth

import (
	"context"
	"net/http"

	"github.com/IKaralkin/securebank/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// SessionValidator resolves a session token to the owning user ID.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (int, error)
}

// SessionMiddleware reads the session cookie and rejects requests whose
// token is missing, unknown or expired.
func SessionMiddleware(sessions SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userID, err := sessions.Validate(r.Context(), cookie.Value)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
