package server

import (
	"fmt"
	"html/template"
	"net/http"

	"andes-autoparts/internal/catalog"
	"andes-autoparts/internal/handlers"
	"andes-autoparts/internal/logging"
	"andes-autoparts/internal/middleware"
	"andes-autoparts/internal/models"
	"andes-autoparts/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
)

const sessionName = "andes_session"

func highlight(s *string, terms []string) template.HTML {
	return catalog.Highlight(models.Text(s), terms)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"highlight": highlight,
		"money":     money,
	}).ParseFS(web.Templates, "templates/*.html"))
}

// NewSessionStore builds the session backend named by kind ("cookie" or "memory").
func NewSessionStore(kind, secret string) (sessions.Store, error) {
	switch kind {
	case "cookie":
		return cookie.NewStore([]byte(secret)), nil
	case "memory":
		return memstore.NewStore([]byte(secret)), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", kind)
	}
}

func NewRouter(h *handlers.Handler, store sessions.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.AccessLog())

	r.SetHTMLTemplate(templates())

	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(middleware.InjectIdentity())

	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/", h.Index)

	// plain-text denial instead of a login redirect
	r.GET("/exportar", middleware.RequireRole(models.RoleAdmin), h.Export)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.GET("/buscar", h.Search)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
