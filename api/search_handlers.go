package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-tfidf-search/internal/search"
	"github.com/gcbaptista/go-tfidf-search/model"
)

// SearchRequest defines the structure for search queries.
// A missing status keeps only ACTUAL documents.
type SearchRequest struct {
	Query    string                `json:"query"`
	Status   *model.DocumentStatus `json:"status,omitempty"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// SearchResponse is the result of a single search.
type SearchResponse struct {
	QueryID  string           `json:"query_id"` // unique UUID for this search query
	Hits     []model.Document `json:"hits"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Took     int64            `json:"took"` // milliseconds
}

// MultiSearchRequest represents the JSON request for multi-search
type MultiSearchRequest struct {
	Queries []search.NamedQuery `json:"queries" binding:"required"`
}

// MatchRequest asks which query terms a document contains.
type MatchRequest struct {
	Query      string `json:"query"`
	DocumentID *int   `json:"document_id" binding:"required"`
}

// SearchHandler runs a ranked search and records it in the request history.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	startTime := time.Now()

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	page, pageSize, result := ValidatePagination(req.Page, req.PageSize, search.MaxResultDocumentCount)
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	status := model.StatusActual
	if req.Status != nil {
		status = *req.Status
	}

	docs, event, err := api.history.FindTopDocumentsTracked(req.Query, model.StatusPredicate(status))
	if err != nil {
		SendIndexError(c, "search", err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		QueryID:  event.QueryID,
		Hits:     search.Page(docs, page, pageSize),
		Total:    len(docs),
		Page:     page,
		PageSize: pageSize,
		Took:     time.Since(startTime).Milliseconds(),
	})
}

// MultiSearchHandler runs several named queries in parallel.
// Multi-search queries are not recorded in the request history.
func (api *API) MultiSearchHandler(c *gin.Context) {
	var req MultiSearchRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	results, err := api.index.MultiSearch(c.Request.Context(), req.Queries)
	if err != nil {
		if isIndexError(err) {
			SendIndexError(c, "multi-search", err)
			return
		}
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, results)
}

// MatchHandler reports the query's plus-terms contained in a document.
func (api *API) MatchHandler(c *gin.Context) {
	var req MatchRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	match, err := api.index.MatchDocument(req.Query, *req.DocumentID)
	if err != nil {
		SendIndexError(c, "match", err)
		return
	}
	c.JSON(http.StatusOK, match)
}
