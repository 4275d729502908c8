package handler

import (
	"strconv"

	"flashbot/backend/internal/store"
	"flashbot/backend/internal/util"

	"github.com/gin-gonic/gin"
)

// parseLimit reads the limit query parameter. Zero disables the bound;
// anything non-numeric or negative is an invalid query.
func parseLimit(c *gin.Context, defaultLimit int) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, util.ErrInvalidQuery("limit must be a non-negative integer")
	}
	return limit, nil
}

// bindDocument binds an arbitrary JSON object request body
func bindDocument(c *gin.Context) (store.Document, error) {
	var doc store.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		return nil, util.ErrValidation("request body must be a JSON object")
	}
	if doc == nil {
		doc = store.Document{}
	}
	return doc, nil
}
