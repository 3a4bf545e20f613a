package main

import (
	"context"
	"log"
	"time"

	"agroshop-bot-be/internal/bootstrap"
	"agroshop-bot-be/internal/config"
	"agroshop-bot-be/internal/server"
	"agroshop-bot-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	if cfg.Feed.BaseURL != "" {
		interval := time.Duration(cfg.Feed.RefreshMinutes) * time.Minute
		log.Println("Background: Starting Catalog Feed Refresh...")
		container.FeedService.RunPeriodic(context.Background(), interval)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
