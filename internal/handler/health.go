// Package handler contains the gin handlers for the dashboard API.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceName identifies the service in health responses
const ServiceName = "FlashBot Dashboard"

// HealthHandler serves the liveness endpoint
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": ServiceName,
	})
}
