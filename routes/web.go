package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes serves the landing and docs stubs.
func SetupWebRoutes(router *gin.Engine) {
	web := router.Group("/")
	{
		web.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "Lowcountry Lister Address Engine",
				"version": "1.0.0",
				"docs":    "/docs",
			})
		})

		web.GET("/docs", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"api": "Lowcountry Lister API v1",
				"endpoints": map[string]string{
					"suggest":  "GET /v1/addresses/suggest?q=",
					"resolve":  "POST /v1/addresses/resolve",
					"score":    "POST /v1/descriptions/score",
					"context":  "POST /v1/descriptions/context",
					"listing":  "GET /v1/neighborhoods",
					"health":   "GET /v1/health",
					"validate": "POST /v1/admin/directory/validate",
				},
			})
		})
	}
}
