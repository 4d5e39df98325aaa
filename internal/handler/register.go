package handler

import (
	"errors"
	"net/http"

	"account-service/internal/account"
	"account-service/internal/flash"
	"account-service/internal/logger"

	"github.com/gin-gonic/gin"
)

type registerForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Error(c.Writer, "All fields are required.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	_, err := h.accounts.Register(
		c.Request.Context(),
		form.Username,
		form.Email,
		form.Password,
	)

	if err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			flash.Error(c.Writer, "Email already registered.")
		} else {
			logger.Error("registration failed", map[string]any{
				"error": err.Error(),
			})
			flash.Error(c.Writer, "Something went wrong. Please try again.")
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	flash.Success(c.Writer, "Account created successfully!")
	c.Redirect(http.StatusFound, "/")
}
