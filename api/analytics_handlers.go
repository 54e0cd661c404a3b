package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HistoryEventsRequest represents the query parameters for listing history events
type HistoryEventsRequest struct {
	Limit int `form:"limit"`
}

// GetHistoryHandler returns the request history window summary
func (api *API) GetHistoryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.history.Stats())
}

// GetHistoryEventsHandler returns the most recent retained requests, newest first
func (api *API) GetHistoryEventsHandler(c *gin.Context) {
	var req HistoryEventsRequest
	if result := ValidateQueryBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	_, limit, result := ValidatePagination(1, req.Limit, defaultPageSize)
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	events := api.history.Events()
	if len(events) > limit {
		events = events[:limit]
	}
	c.JSON(http.StatusOK, gin.H{
		"events":      events,
		"empty_count": api.history.EmptyCount(),
	})
}
