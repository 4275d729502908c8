package handler

import (
	"errors"
	"net/http"

	"flashbot/backend/internal/model"
	"flashbot/backend/internal/store"
	"flashbot/backend/internal/util"

	"github.com/gin-gonic/gin"
)

// StatusHandler serves the bot status singleton
type StatusHandler struct {
	store store.Store
}

func NewStatusHandler(s store.Store) *StatusHandler {
	return &StatusHandler{store: s}
}

// GetStatus handles GET /api/status
func (h *StatusHandler) GetStatus(c *gin.Context) {
	doc, err := h.store.FindSingleton(c.Request.Context(), model.CollectionBotStatus)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"status": "unknown"})
			return
		}
		util.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// UpdateStatus handles PUT /api/status. The body is an arbitrary field map
// merged into the singleton; fields absent from the body keep their values.
func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	fields, err := bindDocument(c)
	if err != nil {
		util.SendError(c, err)
		return
	}

	if err := h.store.UpsertSingleton(c.Request.Context(), model.CollectionBotStatus, fields); err != nil {
		util.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
