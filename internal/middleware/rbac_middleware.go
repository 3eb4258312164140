package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deployappsa/absensi/internal/shared/response"
)

// Authorizer adalah interface lokal; package rbac yang memenuhinya.
type Authorizer interface {
	Allowed(role, resource, action string) (bool, error)
}

// Authorize menolak dengan 403 jika role di context tidak punya izin
// resource:action. Dipasang setelah RequireAuth.
func Authorize(authz Authorizer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
			c.Abort()
			return
		}

		allowed, err := authz.Allowed(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Forbidden", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
