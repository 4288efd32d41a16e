package api

import "github.com/gin-gonic/gin"

func SetupRoutes(router *gin.Engine, h *Handler) {
	router.GET("/health", h.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Sync administration
		v1.POST("/sync/:source", h.TriggerSync)
		v1.GET("/sync/:source/status", h.GetSyncStatus)

		// Upstream previews, nothing is stored
		v1.GET("/offers/:source", h.ResolveOffer)
		v1.GET("/offers/:source/:id", h.GetOffer)

		// Images
		v1.GET("/images/proxy", h.ProxyImage)
		v1.GET("/images/load", h.LoadImage)
		v1.GET("/images/validity", h.CheckImage)

		v1.GET("/vehicles", h.ListVehicles)
		v1.POST("/cleanup/images", h.CleanupImages)

		v1.GET("/vehicle-count/history", h.GetCountHistory)
		v1.POST("/vehicle-count/snapshot", h.RecordCountSnapshot)
		v1.POST("/vehicle-count/backfill", h.BackfillCounts)
	}
}
