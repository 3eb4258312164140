package payroll

import (
	"github.com/gin-gonic/gin"

	"github.com/deployappsa/absensi/internal/middleware"
)

// idempotency boleh nil saat Redis tidak dikonfigurasi.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, requireAuth gin.HandlerFunc, authz middleware.Authorizer, idempotency gin.HandlerFunc) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(requireAuth)
	{
		payrolls.GET("", middleware.Authorize(authz, "payrolls", "read"), h.List)

		create := []gin.HandlerFunc{middleware.Authorize(authz, "payrolls", "create")}
		if idempotency != nil {
			create = append(create, idempotency)
		}
		payrolls.POST("", append(create, h.Create)...)

		payrolls.PATCH("/:id/pay", middleware.Authorize(authz, "payrolls", "pay"), h.Pay)
	}
}
