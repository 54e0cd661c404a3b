package search

import "github.com/gcbaptista/go-tfidf-search/model"

// candidateHit represents a document candidate during search processing
type candidateHit struct {
	doc    model.Document
	status model.DocumentStatus
}

// NamedQuery is one entry of a multi-search request.
// A nil Status keeps only StatusActual documents.
type NamedQuery struct {
	Name   string                `json:"name"`
	Query  string                `json:"query"`
	Status *model.DocumentStatus `json:"status,omitempty"`
}

// MultiSearchResult holds the ranked documents of every named query.
type MultiSearchResult struct {
	Results          map[string][]model.Document `json:"results"`
	TotalQueries     int                         `json:"total_queries"`
	ProcessingTimeMs float64                     `json:"processing_time_ms"`
}
