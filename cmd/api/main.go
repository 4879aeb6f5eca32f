package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"solar-analyzer/internal/api"
	"solar-analyzer/internal/api/handlers"
	"solar-analyzer/internal/api/middleware"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	store := api.NewStore()
	analyzeHandler := handlers.NewAnalyzeHandler(store)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", analyzeHandler.RunAnalysis)
		v1.POST("/analyze/upload", analyzeHandler.UploadAnalysis)
		v1.GET("/analyses/:id", analyzeHandler.GetAnalysis)
		v1.GET("/analyses/:id/days", analyzeHandler.GetAnalysisDays)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
