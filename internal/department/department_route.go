package department

import (
	"github.com/gin-gonic/gin"

	"github.com/deployappsa/absensi/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, requireAuth gin.HandlerFunc, authz middleware.Authorizer) {
	departments := r.Group("/departments")
	departments.Use(requireAuth)
	{
		departments.GET("", middleware.Authorize(authz, "departments", "read"), h.GetAll)
		departments.POST("", middleware.Authorize(authz, "departments", "create"), h.Create)
	}
}
