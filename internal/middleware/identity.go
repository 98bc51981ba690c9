package middleware

import (
	"andes-autoparts/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionUserKey = "user"
	sessionRoleKey = "rol"
	identityKey    = "Identity"
)

// Identity is the logged-in user as recorded in the session.
type Identity struct {
	Username string
	Role     models.UserRole
}

func (i Identity) IsAdmin() bool { return i.Role == models.RoleAdmin }

// StartSession records the user in the session.
func StartSession(c *gin.Context, user *models.User) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(sessionUserKey, user.Username)
	sess.Set(sessionRoleKey, string(user.Role))
	return sess.Save()
}

func EndSession(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	return sess.Save()
}

// InjectIdentity copies the session identity, if any, into the gin context.
func InjectIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if user, ok := sess.Get(sessionUserKey).(string); ok && user != "" {
			role, _ := sess.Get(sessionRoleKey).(string)
			c.Set(identityKey, Identity{Username: user, Role: models.UserRole(role)})
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity set by InjectIdentity.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
