package handlers

import (
	"errors"
	"net/http"

	"andes-autoparts/internal/auth"
	"andes-autoparts/internal/middleware"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const loginFailed = "Usuario o clave incorrectos"

func (h *Handler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": "", "username": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": loginFailed, "username": ""})
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), form.Username, form.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		log.WithField("username", form.Username).Info("login rejected")
		render(c, http.StatusOK, "login.html", gin.H{
			"error":    loginFailed,
			"username": form.Username,
		})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if err := middleware.StartSession(c, user); err != nil {
		serverError(c, err)
		return
	}
	log.WithField("username", user.Username).Info("user logged in")
	c.Redirect(http.StatusFound, "/buscar")
}

func (h *Handler) Logout(c *gin.Context) {
	if err := middleware.EndSession(c); err != nil {
		log.WithError(err).Warn("failed to clear session")
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/buscar")
}
