package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/rewear-app/rewear-api/controllers/auth"
	cartControllers "github.com/rewear-app/rewear-api/controllers/cart"
	itemControllers "github.com/rewear-app/rewear-api/controllers/item"
	swapControllers "github.com/rewear-app/rewear-api/controllers/swap"
	"github.com/rewear-app/rewear-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", authControllers.Me(deps.Auth))
		userGroup.PUT("/", authControllers.UpdateProfile(deps.Auth))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(deps.Store))
			cartGroup.POST("/", cartControllers.AddCartItem(deps.Store, deps.Data))
			cartGroup.PUT("/", cartControllers.SetCartQuantity(deps.Store))
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(deps.Store))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(deps.Store))
		}

		// ──────────────── Listings ────────────────
		userGroup.GET("/items", itemControllers.MyItems(deps.Data))
		userGroup.POST("/items", itemControllers.CreateItem(deps.Data))

		// ──────────────── Swap Requests ────────────────
		userGroup.GET("/swaps", swapControllers.MySwaps(deps.Data))
		userGroup.POST("/swaps", swapControllers.CreateSwap(deps.Data))
	}
}
