// Package api provides the HTTP surface of the search server.
package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-tfidf-search/model"
)

const (
	defaultPageSize  = 10
	maxPageSize      = 100
	maxBulkDocuments = 10000
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateDocumentID parses a document ID path parameter
func ValidateDocumentID(raw string) (int, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	if raw == "" {
		result.AddError("documentID", "Document ID is required")
		return 0, result
	}

	if strings.TrimSpace(raw) != raw {
		result.AddError("documentID", "Document ID cannot have leading or trailing whitespace")
		return 0, result
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		result.AddError("documentID", "Document ID must be an integer")
		return 0, result
	}
	if id < 0 {
		result.AddError("documentID", "Document ID cannot be negative")
	}
	return id, result
}

// ValidateDocuments checks the size of a bulk ingest request.
// Content rules are enforced by the index and reported per document.
func ValidateDocuments(docs []model.DocumentInput) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(docs) == 0 {
		result.AddError("documents", "No documents provided")
		return result
	}
	if len(docs) > maxBulkDocuments {
		result.AddError("documents", fmt.Sprintf("At most %d documents can be added per request", maxBulkDocuments))
	}

	return result
}

// ValidatePagination applies defaults and limits to pagination parameters
func ValidatePagination(page, pageSize, fallbackPageSize int) (int, int, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	if page < 0 {
		result.AddError("page", "Page number must be greater than 0")
	}
	if pageSize < 0 {
		result.AddError("page_size", "Page size must be greater than 0")
	}

	// Set defaults
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = fallbackPageSize
	}

	// Validate limits
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return page, pageSize, result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}

// ValidateJSONBinding validates JSON binding and returns a standardized error
func ValidateJSONBinding(c *gin.Context, target interface{}) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if err := c.ShouldBindJSON(target); err != nil {
		result.AddError("request_body", "Invalid request body: "+err.Error())
	}

	return result
}

// ValidateQueryBinding validates query parameter binding
func ValidateQueryBinding(c *gin.Context, target interface{}) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if err := c.ShouldBindQuery(target); err != nil {
		result.AddError("query_parameters", "Invalid query parameters: "+err.Error())
	}

	return result
}
