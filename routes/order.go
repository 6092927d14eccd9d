package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/rewear-app/rewear-api/controllers/order"
	"github.com/rewear-app/rewear-api/middleware"
)

// SetupOrderRoutes registers checkout and order history endpoints.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orderGroup := r.Group("/user")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("/checkout", orderControllers.Checkout(deps.Store, deps.Data, deps.Auth)) // POST /user/checkout
		orderGroup.GET("/orders", orderControllers.MyOrders(deps.Data))                           // GET /user/orders
		orderGroup.GET("/orders/:orderID", orderControllers.GetOrderByID(deps.Data))              // GET /user/orders/:orderID
	}

	// Live order feed for admin dashboards
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
}
