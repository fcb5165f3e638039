package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every route. Everything except the health check
// sits behind the shared-secret middleware.
func SetupRoutes(r *gin.Engine, h *Handler, auth gin.HandlerFunc) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := r.Group("/", auth)
	{
		// compiled-query relay
		authed.GET("/", h.queryHandler.RelayGet)
		authed.POST("/", h.queryHandler.RelayPost)

		// object storage
		authed.POST("/signedurl", h.storageHandler.SignedURL)
		authed.GET("/bucketmetadata", h.storageHandler.BucketMetadata)

		// push fan-out
		authed.POST("/chat", h.pushHandler.Chat)
		authed.POST("/notifyeventcreated", h.pushHandler.NotifyEventCreated)
	}
}
