package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lowcountrylister/listing-service/app/controllers"
)

// SetupAllRoutes wires middleware and every route group.
func SetupAllRoutes(router *gin.Engine, listingController *controllers.ListingController, directoryController *controllers.DirectoryController) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, listingController)
	SetupAPIRoutes(router, listingController, directoryController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(requestID())
}

// requestID tags every request so UI-reported issues can be matched to
// server logs.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
