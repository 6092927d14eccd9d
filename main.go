package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rewear-app/rewear-api/dataaccess"
	"github.com/rewear-app/rewear-api/localauth"
	"github.com/rewear-app/rewear-api/routes"
	"github.com/rewear-app/rewear-api/storage"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init store
	store := initStore()

	// Identity service with the demo account available out of the box
	auth := localauth.New(store)
	auth.SeedDemoUser()

	// Marketplace data layer (items, swaps, orders)
	data := dataaccess.NewClient(store)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{Store: store, Data: data, Auth: auth})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStore picks the persistence backend. STORE_PATH points at a bolt file;
// leave it unset (or set it to "memory") for an in-process store.
func initStore() storage.Store {
	path := os.Getenv("STORE_PATH")
	if path == "" || path == "memory" {
		log.Println("✅ Using in-memory store")
		return storage.NewMemory()
	}

	store, err := storage.NewBolt(path)
	if err != nil {
		log.Fatalf("❌ Failed to open store at %s: %v", path, err)
	}
	log.Printf("✅ Using bolt store at %s", path)
	return store
}
