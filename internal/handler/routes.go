package handler

import (
	"flashbot/backend/internal/stats"
	"flashbot/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every API handler over a single store
type Handlers struct {
	Health      *HealthHandler
	Status      *StatusHandler
	Opportunity *OpportunityHandler
	Trade       *TradeHandler
	Log         *LogHandler
	Settings    *SettingsHandler
	Stats       *StatsHandler
}

// New constructs all handlers over the given store
func New(s store.Store) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(),
		Status:      NewStatusHandler(s),
		Opportunity: NewOpportunityHandler(s),
		Trade:       NewTradeHandler(s),
		Log:         NewLogHandler(s),
		Settings:    NewSettingsHandler(s),
		Stats:       NewStatsHandler(stats.New(s)),
	}
}

// Register mounts all routes under /api
func (h *Handlers) Register(router gin.IRouter) {
	api := router.Group("/api")
	{
		api.GET("/health", h.Health.Health)

		api.GET("/status", h.Status.GetStatus)
		api.PUT("/status", h.Status.UpdateStatus)

		api.GET("/opportunities", h.Opportunity.List)
		api.POST("/opportunities", h.Opportunity.Create)

		api.GET("/trades", h.Trade.List)
		api.POST("/trades", h.Trade.Create)

		api.GET("/logs", h.Log.List)
		api.POST("/logs", h.Log.Create)
		api.DELETE("/logs", h.Log.Clear)

		api.GET("/settings", h.Settings.Get)
		api.PUT("/settings", h.Settings.Update)

		api.GET("/stats", h.Stats.Get)
	}
}
