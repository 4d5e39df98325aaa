package handler

import (
	"net/http"

	"account-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Dashboard renders the protected view. The session middleware has
// already gated access; the name shown is the login-time snapshot, not
// a fresh account lookup.
func (h *Handler) Dashboard(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"UserName": sess.UserName,
	})
}
