package leave

import (
	"github.com/gin-gonic/gin"

	"github.com/deployappsa/absensi/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, requireAuth gin.HandlerFunc, authz middleware.Authorizer) {
	leaves := r.Group("/leaves")
	leaves.Use(requireAuth)
	{
		leaves.GET("", middleware.Authorize(authz, "leaves", "read"), h.List)
		leaves.POST("", middleware.Authorize(authz, "leaves", "create"), h.Create)
		leaves.PATCH("/:id", middleware.Authorize(authz, "leaves", "approve"), h.Update)
	}
}
