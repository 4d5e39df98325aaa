package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinRequireSession adapts the net/http SessionMiddleware to Gin.
// Authorization stays session-based and framework-agnostic; the bridge
// only moves the enriched request back onto the Gin context.
func GinRequireSession(m *SessionMiddleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		// Wrap Gin request with net/http session middleware
		handler := m.RequireSession(next)

		// Execute middleware chain
		handler.ServeHTTP(c.Writer, c.Request)

		// If the middleware already redirected, stop Gin chain
		if c.Writer.Written() {
			c.Abort()
			return
		}
	}
}
