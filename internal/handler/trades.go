package handler

import (
	"net/http"
	"time"

	"flashbot/backend/internal/model"
	"flashbot/backend/internal/store"
	"flashbot/backend/internal/util"

	"github.com/gin-gonic/gin"
)

// TradeHandler serves the trades collection
type TradeHandler struct {
	store store.Store
}

func NewTradeHandler(s store.Store) *TradeHandler {
	return &TradeHandler{store: s}
}

// List handles GET /api/trades
func (h *TradeHandler) List(c *gin.Context) {
	limit, err := parseLimit(c, 50)
	if err != nil {
		util.SendError(c, err)
		return
	}

	docs, err := h.store.Find(c.Request.Context(), model.CollectionTrades, nil, store.FindOptions{
		SortField: "executed_at",
		SortDesc:  true,
		Limit:     limit,
	})
	if err != nil {
		util.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trades": docs,
		"count":  len(docs),
	})
}

// Create handles POST /api/trades; executed_at is stamped server-side
func (h *TradeHandler) Create(c *gin.Context) {
	doc, err := bindDocument(c)
	if err != nil {
		util.SendError(c, err)
		return
	}
	doc["executed_at"] = store.FormatTime(time.Now())

	if _, err := h.store.InsertOne(c.Request.Context(), model.CollectionTrades, doc); err != nil {
		util.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
