package handler

import (
	"net/http"
	"time"

	"flashbot/backend/internal/model"
	"flashbot/backend/internal/store"
	"flashbot/backend/internal/util"

	"github.com/gin-gonic/gin"
)

// OpportunityHandler serves the opportunities collection
type OpportunityHandler struct {
	store store.Store
}

func NewOpportunityHandler(s store.Store) *OpportunityHandler {
	return &OpportunityHandler{store: s}
}

// List handles GET /api/opportunities
func (h *OpportunityHandler) List(c *gin.Context) {
	limit, err := parseLimit(c, 50)
	if err != nil {
		util.SendError(c, err)
		return
	}

	filter := store.Filter{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	docs, err := h.store.Find(c.Request.Context(), model.CollectionOpportunities, filter, store.FindOptions{
		SortField: "detected_at",
		SortDesc:  true,
		Limit:     limit,
	})
	if err != nil {
		util.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"opportunities": docs,
		"count":         len(docs),
	})
}

// Create handles POST /api/opportunities; detected_at is stamped server-side
func (h *OpportunityHandler) Create(c *gin.Context) {
	doc, err := bindDocument(c)
	if err != nil {
		util.SendError(c, err)
		return
	}
	doc["detected_at"] = store.FormatTime(time.Now())

	if _, err := h.store.InsertOne(c.Request.Context(), model.CollectionOpportunities, doc); err != nil {
		util.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
