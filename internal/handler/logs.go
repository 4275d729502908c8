package handler

import (
	"net/http"
	"time"

	"flashbot/backend/internal/model"
	"flashbot/backend/internal/store"
	"flashbot/backend/internal/util"

	"github.com/gin-gonic/gin"
)

// LogHandler serves the bot log collection
type LogHandler struct {
	store store.Store
}

func NewLogHandler(s store.Store) *LogHandler {
	return &LogHandler{store: s}
}

// List handles GET /api/logs
func (h *LogHandler) List(c *gin.Context) {
	limit, err := parseLimit(c, 100)
	if err != nil {
		util.SendError(c, err)
		return
	}

	filter := store.Filter{}
	if level := c.Query("level"); level != "" {
		filter["level"] = level
	}

	docs, err := h.store.Find(c.Request.Context(), model.CollectionLogs, filter, store.FindOptions{
		SortField: "timestamp",
		SortDesc:  true,
		Limit:     limit,
	})
	if err != nil {
		util.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":  docs,
		"count": len(docs),
	})
}

// Create handles POST /api/logs; timestamp is stamped server-side
func (h *LogHandler) Create(c *gin.Context) {
	doc, err := bindDocument(c)
	if err != nil {
		util.SendError(c, err)
		return
	}
	doc["timestamp"] = store.FormatTime(time.Now())

	if _, err := h.store.InsertOne(c.Request.Context(), model.CollectionLogs, doc); err != nil {
		util.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Clear handles DELETE /api/logs, removing every log entry
func (h *LogHandler) Clear(c *gin.Context) {
	if err := h.store.DeleteAll(c.Request.Context(), model.CollectionLogs); err != nil {
		util.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Logs cleared",
	})
}
