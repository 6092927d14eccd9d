package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/rewear-app/rewear-api/controllers/auth"
	itemControllers "github.com/rewear-app/rewear-api/controllers/item"
)

// SetupAuthRoutes registers the public endpoints: registration, login, and
// the catalog views that need no session.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(deps.Auth))
		authGroup.POST("/login", authControllers.Login(deps.Auth))
		authGroup.POST("/logout", authControllers.Logout(deps.Auth))
	}

	// ──────────────── Public Catalog ────────────────
	r.GET("/items", itemControllers.ListItems(deps.Data))
	r.GET("/items/latest", itemControllers.LatestItems(deps.Data))
	r.GET("/items/:id", itemControllers.GetItem(deps.Data))
	r.GET("/categories", itemControllers.GetCategories())
}
