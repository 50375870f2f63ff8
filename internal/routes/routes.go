package routes

import (
	"fab/internal/controllers"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes all controllers and API routes
func SetupRouter(analyzer controllers.Comparer) *gin.Engine {
	compareController := controllers.CompareController{Analyzer: analyzer}

	router := gin.Default()

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	api := router.Group("/api/v1")
	{
		// POST /api/v1/compare
		// Compares a figure between two report periods
		api.POST("/compare", compareController.PostCompare)
	}

	return router
}
