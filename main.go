package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/lanshare/lanshare/internal/adapter/handler"
	"github.com/lanshare/lanshare/internal/infrastructure/blob"
	infrarepo "github.com/lanshare/lanshare/internal/infrastructure/repository"
	"github.com/lanshare/lanshare/internal/usecase"
	"github.com/lanshare/lanshare/pkg/middleware"
)

// Version is set at build time via -ldflags
var Version = "1.0.0"

func main() {
	config := LoadConfig()

	db, err := infrarepo.Open(config.Storage.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	blobs, err := blob.NewS3Store(blob.Config{
		Endpoint:      config.Blob.Endpoint,
		Region:        config.Blob.Region,
		Bucket:        config.Blob.Bucket,
		AccessKey:     config.Blob.AccessKey,
		SecretKey:     config.Blob.SecretKey,
		PublicBaseURL: config.Blob.PublicBaseURL,
	})
	if err != nil {
		log.Fatal("Failed to initialize blob store:", err)
	}

	items := infrarepo.NewItemRepository(db)
	sessions := infrarepo.NewSessionRepository(db)
	healthRepo := infrarepo.NewHealthRepository(db)

	share := usecase.NewShareUseCase(items, sessions, blobs)
	network := usecase.NewNetworkUseCase(sessions)
	sweeper := usecase.NewSweeper(items, sessions, usecase.SweepInterval)
	health := usecase.NewHealthUseCase(healthRepo, Version)

	limiter := middleware.NewFixedWindowLimiter(middleware.NewWindowStore())

	router := gin.Default()
	router.Use(middleware.SecurityHeaders(), middleware.CORS())

	handler.NewShareHandler(share, sweeper).RegisterRoutes(router, limiter)
	handler.NewNetworkHandler(network).RegisterRoutes(router, limiter)
	handler.NewCleanupHandler(sweeper).RegisterRoutes(router, limiter)
	handler.NewHealthHandler(health).RegisterRoutes(router)

	addr := config.Server.Host + ":" + config.Server.Port
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
