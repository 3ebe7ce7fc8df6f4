package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/yt-trends/internal/api"
	"github.com/yt-trends/internal/cache"
	"github.com/yt-trends/internal/config"
	"github.com/yt-trends/internal/trending"
	"github.com/yt-trends/internal/youtube"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize the YouTube client. A missing key is not fatal here: the
	// page surfaces the problem and no network call is attempted.
	var client trending.Client
	if err := cfg.Validate(); err != nil {
		log.Printf("Warning: %v", err)
	} else {
		yt, err := youtube.NewClient(context.Background(), cfg.YouTubeAPIKey, cfg.HTTPTimeout)
		if err != nil {
			log.Fatalf("Failed to initialize YouTube client: %v", err)
		}
		client = yt
	}

	// Initialize the cache and the render-cycle service
	store := cache.New()
	service := trending.NewService(client, store)

	// Initialize the server
	server := api.NewServer(service, cfg.Region)

	// Start server
	log.Printf("Server starting on port %s (default region %s)", cfg.Port, cfg.Region)
	if err := server.Start(cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
