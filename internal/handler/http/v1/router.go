package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты, требующие API-ключ
	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		protected.POST("/dedup/run", h.runDeduplication)
		protected.GET("/records/:id/primary", h.getPrimary)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
