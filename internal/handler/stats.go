package handler

import (
	"net/http"

	"flashbot/backend/internal/stats"
	"flashbot/backend/internal/util"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the aggregate summary view
type StatsHandler struct {
	aggregator *stats.Aggregator
}

func NewStatsHandler(aggregator *stats.Aggregator) *StatsHandler {
	return &StatsHandler{aggregator: aggregator}
}

// Get handles GET /api/stats
func (h *StatsHandler) Get(c *gin.Context) {
	summary, err := h.aggregator.Compute(c.Request.Context())
	if err != nil {
		util.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
