package handler

import (
	"net/http"

	"account-service/internal/logger"
	"account-service/internal/session"

	"github.com/gin-gonic/gin"
)

// Logout flushes the visitor's session and clears the cookie. Safe to
// call without a session; the redirect is the only effect then.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		// best-effort delete; an expired or unknown id is fine
		_ = h.sessionStore.Delete(c.Request.Context(), cookie.Value)

		logger.Info("logout", map[string]any{
			"session_id": cookie.Value,
		})
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusFound, "/")
}
