package middleware

import (
	"net/http"

	"andes-autoparts/internal/models"

	"github.com/gin-gonic/gin"
)

const NotAuthorized = "No autorizado"

// RequireAuth redirects to the login page when there is no session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole answers a plain-text 403 unless the session carries one of the
// roles. A missing session is treated the same way.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := map[models.UserRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if ok {
			_, ok = roleSet[id.Role]
		}
		if !ok {
			c.String(http.StatusForbidden, NotAuthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}
