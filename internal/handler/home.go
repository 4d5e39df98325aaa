package handler

import (
	"net/http"

	"account-service/internal/flash"

	"github.com/gin-gonic/gin"
)

// Home renders the landing view with the register and login forms. It is
// the redirect target for every other flow's error and outcome path, so
// it also drains the pending flash message.
func (h *Handler) Home(c *gin.Context) {
	data := gin.H{}

	if msg, ok := flash.Take(c.Writer, c.Request); ok {
		data["Message"] = msg.Text
		data["Level"] = msg.Level
	}

	c.HTML(http.StatusOK, "index.html", data)
}
