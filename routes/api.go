package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lowcountrylister/listing-service/app/controllers"
)

// SetupAPIRoutes wires the versioned API surface.
func SetupAPIRoutes(router *gin.Engine, listingController *controllers.ListingController, directoryController *controllers.DirectoryController) {
	v1 := router.Group("/v1")
	{
		addresses := v1.Group("/addresses")
		{
			addresses.GET("/suggest", listingController.SuggestAddresses)
			addresses.POST("/resolve", listingController.ResolveAddress)
		}

		descriptions := v1.Group("/descriptions")
		{
			descriptions.POST("/score", listingController.ScoreDescription)
			descriptions.POST("/context", listingController.BuildContext)
		}

		neighborhoods := v1.Group("/neighborhoods")
		{
			neighborhoods.GET("", directoryController.ListNeighborhoods)
			neighborhoods.GET("/:name", directoryController.GetNeighborhood)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/directory/validate", directoryController.ValidateDirectory)
			admin.POST("/cache/invalidate", directoryController.InvalidateCache)
			admin.GET("/stats", directoryController.GetStats)
		}

		v1.GET("/health", listingController.HealthCheck)
	}
}

// SetupHealthRoutes wires the unversioned probes.
func SetupHealthRoutes(router *gin.Engine, listingController *controllers.ListingController) {
	router.GET("/health", listingController.HealthCheck)
	router.GET("/ready", listingController.HealthCheck)
	router.GET("/live", listingController.HealthCheck)
}
