package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1; изменяющие маршруты требуют API-ключ
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.DELETE("/:id", auth, h.deleteIncident)
		incidents.POST("/:id/assign", auth, h.assignIncident)
		incidents.POST("/:id/resolve", auth, h.resolveIncident)
	}

	duty := api.Group("/duty")
	{
		duty.GET("", h.getRoster)
		duty.GET("/:person", h.getDutyStatus)
	}

	analytics := api.Group("/analytics")
	{
		analytics.GET("/types", h.getTypeCounts)
		analytics.GET("/monthly", h.getMonthlySeries)
	}

	types := api.Group("/incident-types")
	{
		types.GET("", h.listIncidentTypes)
		types.POST("", auth, h.createIncidentType)
	}

	api.GET("/sync/status", h.getSyncStatus)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
