package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/routes"
	"github.com/junaidrashid-git/storefront-api/stores"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Load the catalog once; it is immutable for the rest of the session
	dataSource := os.Getenv("DATA_SOURCE")
	if dataSource == "" {
		dataSource = "./data"
	}
	cat, err := catalog.Load(dataSource)
	if err != nil {
		log.Fatalf("❌ Failed to load catalog from %s: %v", dataSource, err)
	}
	log.Printf("✅ Catalog loaded: %d products, %d categories", len(cat.Products()), len(cat.Categories()))

	// Open the slot store backing all client state
	storeDir := os.Getenv("STORE_DIR")
	if storeDir == "" {
		storeDir = "./storefront-state"
	}
	slots, err := stores.OpenBadgerSlots(storeDir)
	if err != nil {
		log.Fatalf("❌ Failed to open slot store at %s: %v", storeDir, err)
	}

	// Build the item stores; each restores its slot or starts empty
	hub := stores.NewHub()
	s := routes.Stores{
		Cart:     stores.NewCart(slots, hub),
		Wishlist: stores.NewWishlist(slots, hub),
		Compare:  stores.NewCompare(slots, hub),
		Recent:   stores.NewRecent(slots, hub),
		Flags:    stores.NewFlags(slots, hub),
		Hub:      hub,
	}

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
	routes.SetupRoutes(r, cat, s)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		log.Printf("🚀 Server running on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Flush state and stop cleanly on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("⏳ Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown failed: %v", err)
	}
	if err := slots.Close(); err != nil {
		log.Printf("❌ Failed to close slot store: %v", err)
	}
	log.Println("✅ Shutdown complete")
}
