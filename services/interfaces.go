package services

import (
	"context"

	"github.com/gcbaptista/go-tfidf-search/internal/indexing"
	"github.com/gcbaptista/go-tfidf-search/internal/search"
	"github.com/gcbaptista/go-tfidf-search/model"
)

// Indexer defines operations that mutate the document collection.
type Indexer interface {
	AddDocument(doc model.DocumentInput) error
	AddDocuments(docs []model.DocumentInput) indexing.BulkResult
	RemoveDocument(docID int) error
	RemoveDocuments(docIDs []int) ([]int, error)
}

// Searcher defines the ranked search entry points.
// FindTopActualDocuments is the default overload keeping StatusActual documents only.
type Searcher interface {
	FindTopDocuments(rawQuery string, predicate model.DocumentPredicate) ([]model.Document, error)
	FindTopDocumentsByStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error)
	FindTopActualDocuments(rawQuery string) ([]model.Document, error)
}

// Matcher reports which query terms a document contains.
type Matcher interface {
	MatchDocument(rawQuery string, docID int) (model.MatchResult, error)
}

// IndexReader exposes read-only views over the document collection.
type IndexReader interface {
	DocumentCount() int
	DocumentIDs() []int
	WordFrequencies(docID int) map[string]float64
}

// IndexAccessor is the full surface of a single search index.
type IndexAccessor interface {
	Indexer
	Searcher
	Matcher
	IndexReader
	InverseDocumentFrequency(term string) float64
	MultiSearch(ctx context.Context, queries []search.NamedQuery) (*search.MultiSearchResult, error)
}

// HistoryRecorder tracks the outcome of served queries.
type HistoryRecorder interface {
	Searcher
	FindTopDocumentsTracked(rawQuery string, predicate model.DocumentPredicate) ([]model.Document, model.SearchEvent, error)
	EmptyCount() int
	Stats() model.HistoryStats
	Events() []model.SearchEvent
}
