package handler

import (
	"errors"
	"net/http"
	"time"

	"flashbot/backend/internal/model"
	"flashbot/backend/internal/store"
	"flashbot/backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the settings singleton
type SettingsHandler struct {
	store store.Store
}

func NewSettingsHandler(s store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// Get handles GET /api/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	doc, err := h.store.FindSingleton(c.Request.Context(), model.CollectionSettings)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.SendError(c, util.ErrNotFound("Settings not found"))
			return
		}
		util.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Update handles PUT /api/settings. Only fields present in the body are
// merged; updated_at always advances. Responds with the full updated
// settings document.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req model.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		util.SendError(c, util.ErrValidation(err.Error()))
		return
	}

	fields := store.Document(req.Fields())
	fields["updated_at"] = store.FormatTime(time.Now())

	ctx := c.Request.Context()
	if err := h.store.UpsertSingleton(ctx, model.CollectionSettings, fields); err != nil {
		util.SendError(c, err)
		return
	}

	doc, err := h.store.FindSingleton(ctx, model.CollectionSettings)
	if err != nil {
		util.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
