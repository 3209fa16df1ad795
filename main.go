package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/campus-market/api-go/config"
	"github.com/campus-market/api-go/routes"
	"github.com/campus-market/api-go/storage"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize photo storage
	storageConfig := config.GetStorageConfig()
	store, err := storage.New(storageConfig)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	// Create a new Gin router
	r := gin.Default()

	// Serve locally stored photos
	if local, ok := store.(*storage.Local); ok {
		r.Static("/uploads", local.Dir)
	}

	// Initialize routes
	routes.SetupRoutes(r, db, store)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
