package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/deployappsa/absensi/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, requireAuth gin.HandlerFunc, authz middleware.Authorizer) {
	att := r.Group("/attendance")
	att.Use(requireAuth)
	{
		att.GET("", middleware.Authorize(authz, "attendance", "read"), h.List)
		att.POST("/check-in", middleware.Authorize(authz, "attendance", "create"), h.CheckIn)
		att.POST("/:id/check-out", middleware.Authorize(authz, "attendance", "create"), h.CheckOut)
		att.PATCH("/:id/approve", middleware.Authorize(authz, "attendance", "approve"), h.Approve)
		att.GET("/pending", middleware.Authorize(authz, "attendance", "read_pending"), h.ListPending)
		att.GET("/export", middleware.Authorize(authz, "attendance", "export"), h.Export)
	}
}
