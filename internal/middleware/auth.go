package middleware

import (
	"context"
	"net/http"
	"time"

	"account-service/internal/session"
)

// unexported, collision-proof context key
type sessionContextKeyType struct{}

var sessionKey = sessionContextKeyType{}

// SessionFromContext extracts the authenticated session from context.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}

type SessionMiddleware struct {
	Store session.Store
}

func NewSessionMiddleware(store session.Store) *SessionMiddleware {
	return &SessionMiddleware{Store: store}
}

// RequireSession guards a page on session presence. The user_name
// snapshot is the authorization signal; anything less redirects to the
// home view silently, with no error message.
func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		sessionID := cookie.Value

		// 2. Load session
		sess, err := m.Store.Get(r.Context(), sessionID)
		if err != nil || sess == nil || sess.UserName == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		// 3. Enforce expiry even if the store missed the TTL
		if time.Now().After(sess.ExpiresAt) {
			_ = m.Store.Delete(r.Context(), sessionID)
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		// 4. Attach session to context
		ctx := context.WithValue(r.Context(), sessionKey, sess)

		// 5. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
