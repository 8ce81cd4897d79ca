package middleware

import (
	"net/http"
	"strings"

	"workspace-portal/internal/domain/authz"
	"workspace-portal/internal/domain/roles"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests with no identified user. Browser
// navigation gets sent to the login page; API calls get a plain 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); ok {
			c.Next()
			return
		}
		unauthenticated(c)
	}
}

// Admission enforces the static route-admission table: paths matching a
// gated prefix need a session holding the required role. Paths outside
// the table pass untouched; per-group RequireAuth still applies.
func Admission(roleStore roles.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		required, gated := authz.Required(c.Request.URL.Path)
		if !gated {
			c.Next()
			return
		}

		userID, ok := CurrentUserID(c)
		if !ok {
			unauthenticated(c)
			return
		}

		has, err := roleStore.HasRole(c.Request.Context(), userID, required)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check permissions"})
			return
		}
		if !has {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

func unauthenticated(c *gin.Context) {
	accept := c.GetHeader("Accept")
	if strings.Contains(accept, "text/html") && c.Request.Method == http.MethodGet {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
}
