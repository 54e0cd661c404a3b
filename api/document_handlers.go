package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-tfidf-search/internal/duplicates"
	"github.com/gcbaptista/go-tfidf-search/internal/search"
	"github.com/gcbaptista/go-tfidf-search/model"
)

// documentPayload is the wire form of one document to ingest.
// document_id is a pointer so a missing ID can be told apart from ID 0.
type documentPayload struct {
	ID      *int                 `json:"document_id"`
	Text    string               `json:"text"`
	Status  model.DocumentStatus `json:"status"`
	Ratings []int                `json:"ratings"`
}

// AddDocumentsHandler ingests one document object or an array of them.
// Each document succeeds or fails independently; the response lists both.
func (api *API) AddDocumentsHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Failed to read request body: "+err.Error())
		return
	}

	var payloads []documentPayload
	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &payloads); err != nil {
			SendInvalidJSONError(c, err)
			return
		}
	case len(trimmed) > 0 && trimmed[0] == '{':
		var single documentPayload
		if err := json.Unmarshal(trimmed, &single); err != nil {
			SendInvalidJSONError(c, err)
			return
		}
		payloads = []documentPayload{single}
	default:
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
			"Invalid request body. Expecting a document object or an array of documents")
		return
	}

	docs := make([]model.DocumentInput, len(payloads))
	validation := &ValidationResult{Valid: true}
	for i, payload := range payloads {
		if payload.ID == nil {
			validation.AddError(fmt.Sprintf("documents[%d].document_id", i), "Document must have a 'document_id' field")
			continue
		}
		docs[i] = model.DocumentInput{
			ID:      *payload.ID,
			Text:    payload.Text,
			Status:  payload.Status,
			Ratings: payload.Ratings,
		}
	}
	if validation.HasErrors() {
		SendValidationError(c, validation)
		return
	}
	if result := ValidateDocuments(docs); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	result := api.index.AddDocuments(docs)

	status := http.StatusOK
	if len(result.Indexed) == 0 {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{
		"indexed":     result.Indexed,
		"failed":      result.Failed,
		"total":       api.index.DocumentCount(),
		"duration_ms": float64(result.Duration.Microseconds()) / 1000,
	})
}

// DocumentListRequest represents the query parameters for listing documents
type DocumentListRequest struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

// GetDocumentsHandler lists live document IDs in ascending order with pagination
func (api *API) GetDocumentsHandler(c *gin.Context) {
	var req DocumentListRequest
	if result := ValidateQueryBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	page, pageSize, result := ValidatePagination(req.Page, req.PageSize, defaultPageSize)
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	ids := api.index.DocumentIDs()
	totalCount := len(ids)

	c.JSON(http.StatusOK, gin.H{
		"document_ids": search.Page(ids, page, pageSize),
		"total":        totalCount,
		"page":         page,
		"page_size":    pageSize,
		"pages":        (totalCount + pageSize - 1) / pageSize,
	})
}

// DeleteDocumentHandler deletes a specific document by ID
func (api *API) DeleteDocumentHandler(c *gin.Context) {
	docID, result := ValidateDocumentID(c.Param("documentId"))
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.index.RemoveDocument(docID); err != nil {
		SendIndexError(c, "delete document", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Document %d deleted", docID),
		"document_id": docID,
	})
}

// GetWordFrequenciesHandler returns the term frequencies of a document.
// An unknown document yields an empty mapping, not an error.
func (api *API) GetWordFrequenciesHandler(c *gin.Context) {
	docID, result := ValidateDocumentID(c.Param("documentId"))
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"document_id": docID,
		"frequencies": api.index.WordFrequencies(docID),
	})
}

// GetInverseDocumentFrequencyHandler returns the current IDF of a term.
func (api *API) GetInverseDocumentFrequencyHandler(c *gin.Context) {
	term := c.Param("term")
	c.JSON(http.StatusOK, gin.H{
		"term": term,
		"idf":  api.index.InverseDocumentFrequency(term),
	})
}

// RemoveDuplicatesHandler removes every document whose term set duplicates a
// lower-ID document.
func (api *API) RemoveDuplicatesHandler(c *gin.Context) {
	before := api.index.DocumentCount()
	removed, err := duplicates.RemoveDuplicates(api.index)
	if err != nil {
		SendIndexError(c, "remove duplicates", err)
		return
	}
	api.metrics.ObserveDuplicates(len(removed))

	c.JSON(http.StatusOK, gin.H{
		"removed": removed,
		"before":  before,
		"after":   api.index.DocumentCount(),
	})
}
