package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rewear-app/rewear-api/dataaccess"
	"github.com/rewear-app/rewear-api/localauth"
	"github.com/rewear-app/rewear-api/storage"
)

// Deps carries the wired services every route group needs.
type Deps struct {
	Store storage.Store
	Data  *dataaccess.Client
	Auth  *localauth.Service
}

// SetupRoutes is the single entry‐point that wires up Auth, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public routes (no middleware)
	SetupAuthRoutes(r, deps)

	// 2️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, deps)

	// 3️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, deps)

	// order routes
	SetupOrderRoutes(r, deps)
}
