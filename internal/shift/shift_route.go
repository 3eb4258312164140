package shift

import (
	"github.com/gin-gonic/gin"

	"github.com/deployappsa/absensi/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, requireAuth gin.HandlerFunc, authz middleware.Authorizer) {
	shifts := r.Group("/shifts")
	shifts.Use(requireAuth)
	{
		shifts.GET("", middleware.Authorize(authz, "shifts", "read"), h.GetAll)
		shifts.POST("", middleware.Authorize(authz, "shifts", "create"), h.Create)
	}
}
