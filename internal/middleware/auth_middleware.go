package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deployappsa/absensi/internal/session"
	"github.com/deployappsa/absensi/internal/shared/contextutil"
	"github.com/deployappsa/absensi/internal/shared/response"
)

// Principal adalah identitas user hasil resolve session, cukup untuk
// kebutuhan otorisasi tanpa membawa seluruh record user.
type Principal struct {
	ID       uint
	Username string
	Name     string
	Role     string
}

// PrincipalLoader adalah interface lokal; package user yang
// mengimplementasikannya, middleware tidak perlu import package user.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, userID uint) (Principal, error)
}

// RequireAuth menolak request tanpa session valid sebelum handler berjalan:
// cookie tidak ada / tidak bisa didecode, session tidak ditemukan atau
// kadaluarsa, atau user di session sudah tidak ada.
func RequireAuth(codec *session.CookieCodec, sessions session.Store, loader PrincipalLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := codec.Read(c.Request)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
			c.Abort()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), sid)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
			c.Abort()
			return
		}

		principal, err := loader.LoadPrincipal(c.Request.Context(), sess.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not found", nil)
			c.Abort()
			return
		}

		c.Set("session_id", sid)
		c.Set("user_id", principal.ID)
		c.Set("user_name", principal.Name)
		c.Set("role", principal.Role)

		ctx := contextutil.WithUserID(c.Request.Context(), principal.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
