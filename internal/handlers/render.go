package handlers

import (
	"net/http"

	"andes-autoparts/internal/middleware"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// render wraps c.HTML and passes the session identity to every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if id, ok := middleware.CurrentIdentity(c); ok {
		data["CurrentUsername"] = id.Username
		data["CurrentUserRole"] = id.Role
		data["IsAdmin"] = id.IsAdmin()
	}

	c.HTML(status, tmpl, data)
}

// serverError logs err and answers a plain 500.
func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	c.String(http.StatusInternalServerError, "Error interno del servidor")
}
