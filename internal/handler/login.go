package handler

import (
	"errors"
	"net/http"
	"time"

	"account-service/internal/account"
	"account-service/internal/flash"
	"account-service/internal/logger"
	"account-service/internal/session"

	"github.com/gin-gonic/gin"
)

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Error(c.Writer, "All fields are required.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	acc, err := h.accounts.Authenticate(
		c.Request.Context(),
		form.Email,
		form.Password,
	)

	if err != nil {
		if !errors.Is(err, account.ErrInvalidCredentials) {
			logger.Error("login failed", map[string]any{
				"error": err.Error(),
			})
		}
		// one generic message regardless of the reason; the session
		// stays untouched
		flash.Error(c.Writer, "Invalid email or password.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		flash.Error(c.Writer, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	now := time.Now()
	expiresAt := now.Add(h.sessionTTL)

	// user_id and user_name land in one payload: one write, one session
	if err := h.sessionStore.Create(
		c.Request.Context(),
		session.Session{
			SessionID: sessionID,
			UserID:    acc.ID.String(),
			UserName:  acc.Name,
			CreatedAt: now,
			ExpiresAt: expiresAt,
		},
	); err != nil {
		logger.Error("failed to persist session", map[string]any{
			"error": err.Error(),
		})
		flash.Error(c.Writer, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	session.SetCookie(
		c.Writer,
		sessionID,
		expiresAt,
		session.CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
	)

	logger.Info("login succeeded", map[string]any{
		"user_id": acc.ID.String(),
	})

	c.Redirect(http.StatusFound, "/dashboard")
}
