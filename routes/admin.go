package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/rewear-app/rewear-api/controllers/admin"
	orderControllers "github.com/rewear-app/rewear-api/controllers/order"
	swapControllers "github.com/rewear-app/rewear-api/controllers/swap"
	"github.com/rewear-app/rewear-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", adminControllers.GetAllUsers(deps.Auth))
		adminGroup.GET("/stats", adminControllers.GetStats(deps.Auth))
		adminGroup.GET("/export", adminControllers.ExportUserData(deps.Auth))
		adminGroup.GET("/export-excel", adminControllers.ExportUsersToExcel(deps.Auth))

		// ─────────── Swap Management ───────────
		swapAdmin := adminGroup.Group("/swaps")
		{
			swapAdmin.GET("", swapControllers.ListSwaps(deps.Data))
			swapAdmin.PUT("/:id", swapControllers.UpdateSwap(deps.Data))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.ListOrders(deps.Data))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(deps.Data))
			orderAdmin.PUT("/:orderID/payment", orderControllers.UpdatePaymentStatus(deps.Data))
		}
	}
}
