package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/careerpathways/job-board/internal/config"
	"github.com/careerpathways/job-board/internal/database"
	"github.com/careerpathways/job-board/internal/handlers"
	"github.com/careerpathways/job-board/internal/services"
	"github.com/careerpathways/job-board/internal/source"
)

func main() {
	// 1. Environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}
	cfg := config.Load()

	// 2. Database (write path + optional read source)
	db := database.Connect(cfg.PostgresDSN)

	// 3. Pick the row source
	ctx := context.Background()
	var src source.RowSource
	switch cfg.DataSource {
	case config.SourceSheet:
		sheetSrc, err := source.NewSheetSource(ctx, cfg.SheetsAPIKey, cfg.SheetID, cfg.SheetRange)
		if err != nil {
			log.Fatal("Failed to create sheet source:", err)
		}
		src = sheetSrc
	case config.SourceDatabase:
		src = source.NewDatabaseSource(db)
	default:
		src = source.NewCSVSource(cfg.CSVExportURL)
	}

	// 4. Services
	listingService := services.NewListingService(src)
	submissionService := services.NewSubmissionService(db)

	// One load per lifecycle; a failure here is not fatal, the API reports
	// "could not load data" until a refresh succeeds.
	if err := listingService.Refresh(ctx); err != nil {
		log.Printf("Initial data load failed: %v", err)
	} else {
		log.Println("Job data loaded")
	}

	// 5. Router & CORS
	jobHandler := handlers.NewJobHandler(listingService, submissionService, cfg.PageSize, cfg.PageNeighbors)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/jobs", jobHandler.ListJobs)
		api.GET("/jobs/stats", jobHandler.JobStats)
		api.POST("/jobs", jobHandler.SubmitJob)
		api.POST("/jobs/refresh", jobHandler.RefreshJobs)
	}

	log.Printf("Server starting on port %s...", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
