package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gcbaptista/go-tfidf-search/config"
	"github.com/gcbaptista/go-tfidf-search/index"
	"github.com/gcbaptista/go-tfidf-search/internal/analytics"
	"github.com/gcbaptista/go-tfidf-search/internal/indexing"
	"github.com/gcbaptista/go-tfidf-search/internal/logger"
	"github.com/gcbaptista/go-tfidf-search/internal/query"
	"github.com/gcbaptista/go-tfidf-search/internal/search"
	"github.com/gcbaptista/go-tfidf-search/model"
	"github.com/gcbaptista/go-tfidf-search/store"
)

// SearchServer holds all components and services of a single in-memory index.
// It implements the services.IndexAccessor interface.
type SearchServer struct {
	settings      config.IndexSettings
	InvertedIndex *index.InvertedIndex
	DocumentStore *store.DocumentStore
	indexer       *indexing.Service
	searcher      *search.Service
	metrics       *analytics.Metrics
	log           *slog.Logger
}

// Option configures optional SearchServer collaborators.
type Option func(*SearchServer)

// WithMetrics reports ingest, removal and search outcomes to m.
func WithMetrics(m *analytics.Metrics) Option {
	return func(s *SearchServer) {
		s.metrics = m
	}
}

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *SearchServer) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSearchServer validates the stop words and builds an empty index.
// An invalid stop word fails with an InvalidConfigurationError.
func NewSearchServer(settings config.IndexSettings, opts ...Option) (*SearchServer, error) {
	stopWords, err := settings.StopWordSet()
	if err != nil {
		return nil, err
	}

	invIndex := index.NewInvertedIndex()
	docStore := store.NewDocumentStore()

	indexerService, err := indexing.NewService(invIndex, docStore, stopWords)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexer service: %w", err)
	}
	searchService, err := search.NewService(invIndex, docStore, query.NewParser(stopWords))
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	server := &SearchServer{
		settings:      settings,
		InvertedIndex: invIndex,
		DocumentStore: docStore,
		indexer:       indexerService,
		searcher:      searchService,
		log:           logger.WithComponent("engine"),
	}
	for _, opt := range opts {
		opt(server)
	}

	server.log.Debug("search server created", "stop_words", len(stopWords))
	return server, nil
}

// NewSearchServerFromText builds a server whose stop words are space-delimited text.
func NewSearchServerFromText(stopWordsText string, opts ...Option) (*SearchServer, error) {
	return NewSearchServer(config.NewIndexSettingsFromText(stopWordsText), opts...)
}

// Settings returns the configuration the server was built with.
func (s *SearchServer) Settings() config.IndexSettings {
	return s.settings
}

// AddDocument ingests one document.
func (s *SearchServer) AddDocument(doc model.DocumentInput) error {
	err := s.indexer.AddDocument(doc)
	s.metrics.ObserveIngest(err, s.DocumentCount())
	return err
}

// AddDocuments ingests documents independently, collecting failures.
func (s *SearchServer) AddDocuments(docs []model.DocumentInput) indexing.BulkResult {
	result := s.indexer.AddDocuments(docs)
	if s.metrics != nil {
		live := s.DocumentCount()
		for range result.Indexed {
			s.metrics.ObserveIngest(nil, live)
		}
		for _, failure := range result.Failed {
			s.metrics.ObserveIngest(failure.Err, live)
		}
	}
	return result
}

// RemoveDocument deletes a live document. Unknown IDs fail with UnknownDocumentError.
func (s *SearchServer) RemoveDocument(docID int) error {
	if err := s.indexer.RemoveDocument(docID); err != nil {
		return err
	}
	s.metrics.ObserveRemoval(1, s.DocumentCount())
	s.log.Info("document removed", "document_id", docID)
	return nil
}

// RemoveDocuments deletes a batch of documents atomically with respect to readers.
func (s *SearchServer) RemoveDocuments(docIDs []int) ([]int, error) {
	removed, err := s.indexer.RemoveDocuments(docIDs)
	s.metrics.ObserveRemoval(len(removed), s.DocumentCount())
	return removed, err
}

// DocumentCount returns the number of live documents.
func (s *SearchServer) DocumentCount() int {
	s.DocumentStore.Mu.RLock()
	defer s.DocumentStore.Mu.RUnlock()
	return s.DocumentStore.Count()
}

// DocumentIDs returns the live document IDs in ascending order.
func (s *SearchServer) DocumentIDs() []int {
	s.DocumentStore.Mu.RLock()
	defer s.DocumentStore.Mu.RUnlock()
	return s.DocumentStore.IDs()
}

// WordFrequencies returns a copy of the document's term frequencies,
// or an empty map for an unknown document.
func (s *SearchServer) WordFrequencies(docID int) map[string]float64 {
	s.InvertedIndex.Mu.RLock()
	defer s.InvertedIndex.Mu.RUnlock()
	return s.InvertedIndex.TermFrequencies(docID)
}

// CheckConsistency verifies the inverted index and the document store agree.
func (s *SearchServer) CheckConsistency() error {
	s.DocumentStore.Mu.RLock()
	s.InvertedIndex.Mu.RLock()
	defer s.DocumentStore.Mu.RUnlock()
	defer s.InvertedIndex.Mu.RUnlock()

	if err := s.InvertedIndex.CheckConsistency(); err != nil {
		return err
	}
	if s.InvertedIndex.DocumentCount() != s.DocumentStore.Count() {
		return fmt.Errorf("inverted index has %d documents but store has %d",
			s.InvertedIndex.DocumentCount(), s.DocumentStore.Count())
	}
	for _, id := range s.DocumentStore.IDs() {
		if !s.InvertedIndex.HasDocument(id) {
			return fmt.Errorf("document %d is stored but not indexed", id)
		}
	}
	return nil
}

// FindTopDocuments returns the top documents accepted by predicate.
// A nil predicate keeps only StatusActual documents.
func (s *SearchServer) FindTopDocuments(rawQuery string, predicate model.DocumentPredicate) ([]model.Document, error) {
	docs, err := s.searcher.FindTopDocuments(rawQuery, predicate)
	s.metrics.ObserveSearch(len(docs), err)
	return docs, err
}

// FindTopDocumentsByStatus returns the top documents with the given status.
func (s *SearchServer) FindTopDocumentsByStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error) {
	return s.FindTopDocuments(rawQuery, model.StatusPredicate(status))
}

// FindTopActualDocuments returns the top StatusActual documents.
func (s *SearchServer) FindTopActualDocuments(rawQuery string) ([]model.Document, error) {
	return s.FindTopDocumentsByStatus(rawQuery, model.StatusActual)
}

// MatchDocument reports the query's plus-terms present in the document.
func (s *SearchServer) MatchDocument(rawQuery string, docID int) (model.MatchResult, error) {
	return s.searcher.MatchDocument(rawQuery, docID)
}

// InverseDocumentFrequency returns the current IDF of term.
func (s *SearchServer) InverseDocumentFrequency(term string) float64 {
	return s.searcher.InverseDocumentFrequency(term)
}

// MultiSearch runs several named queries in parallel.
func (s *SearchServer) MultiSearch(ctx context.Context, queries []search.NamedQuery) (*search.MultiSearchResult, error) {
	return s.searcher.MultiSearch(ctx, queries)
}
