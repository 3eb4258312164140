package timeline

import (
	"github.com/gin-gonic/gin"

	"github.com/deployappsa/absensi/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, requireAuth gin.HandlerFunc, authz middleware.Authorizer) {
	tl := r.Group("/timeline")
	tl.Use(requireAuth)
	{
		tl.GET("", middleware.Authorize(authz, "timeline", "read"), h.List)
		tl.POST("", middleware.Authorize(authz, "timeline", "create"), h.Create)
		tl.POST("/:id/like", middleware.Authorize(authz, "timeline", "create"), h.Like)
		tl.POST("/:id/comments", middleware.Authorize(authz, "timeline", "create"), h.Comment)
	}
}
