package handler

import (
	"net/http"
	"time"

	"account-service/internal/account"
	"account-service/internal/middleware"
	"account-service/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	accounts     *account.Service
	sessionStore session.Store
	sessionTTL   time.Duration
}

func NewHandler(
	accounts *account.Service,
	sessionStore session.Store,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		accounts:     accounts,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, sessions *middleware.SessionMiddleware) {
	r.GET("/", h.Home)

	// register and login mutate state on POST only; any other verb
	// bounces to home without side effects
	r.POST("/register", h.Register)
	r.GET("/register", h.redirectHome)
	r.POST("/login", h.Login)
	r.GET("/login", h.redirectHome)

	r.GET("/logout", h.Logout)
	r.POST("/logout", h.Logout)

	protected := r.Group("/")
	protected.Use(middleware.GinRequireSession(sessions))
	protected.GET("/dashboard", h.Dashboard)
}

func (h *Handler) redirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}
