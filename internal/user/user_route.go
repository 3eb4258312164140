package user

import (
	"github.com/gin-gonic/gin"

	"github.com/deployappsa/absensi/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, requireAuth gin.HandlerFunc, authz middleware.Authorizer) {
	users := r.Group("/users")
	users.Use(requireAuth)
	{
		users.GET("/me", h.Me)
		users.GET("", middleware.Authorize(authz, "users", "read"), h.GetAll)
		users.POST("", middleware.Authorize(authz, "users", "create"), h.Create)
	}
}
