package api

import (
	"net/http"

	authDelivery "howler-relay/internal/auth/delivery"
	pushDelivery "howler-relay/internal/push/delivery"
	queryDelivery "howler-relay/internal/query/delivery"
	storageDelivery "howler-relay/internal/storage/delivery"
	"howler-relay/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	cfg            *config.Config
	pushHandler    *pushDelivery.PushHandler
	queryHandler   *queryDelivery.QueryHandler
	storageHandler *storageDelivery.StorageHandler
}

func NewHandler(cfg *config.Config, pushHandler *pushDelivery.PushHandler, queryHandler *queryDelivery.QueryHandler, storageHandler *storageDelivery.StorageHandler) *Handler {
	return &Handler{
		cfg:            cfg,
		pushHandler:    pushHandler,
		queryHandler:   queryHandler,
		storageHandler: storageHandler,
	}
}

// Engine builds the router; the caller owns the http.Server around it.
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	SetupRoutes(r, h, authDelivery.SharedSecretMiddleware(h.cfg.AuthSecret))
	return r
}
