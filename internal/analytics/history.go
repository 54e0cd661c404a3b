package analytics

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-tfidf-search/internal/logger"
	"github.com/gcbaptista/go-tfidf-search/model"
	"github.com/gcbaptista/go-tfidf-search/services"
)

const (
	// DefaultWindow is the number of most recent requests retained,
	// one day of one-request-per-minute traffic.
	DefaultWindow = 1440

	maxPopularQueries = 5
)

// RequestHistory keeps a count-based sliding window over served queries and
// tracks how many of them returned no documents.
// It implements the services.HistoryRecorder interface.
type RequestHistory struct {
	mu         sync.RWMutex
	searcher   services.Searcher
	window     int
	clock      int64
	events     []model.SearchEvent // oldest first
	emptyCount int
	metrics    *Metrics
	log        *slog.Logger
}

// HistoryOption configures a RequestHistory.
type HistoryOption func(*RequestHistory)

// WithWindow overrides DefaultWindow. Non-positive values are ignored.
func WithWindow(window int) HistoryOption {
	return func(h *RequestHistory) {
		if window > 0 {
			h.window = window
		}
	}
}

// WithHistoryMetrics mirrors the empty-request count into m.
func WithHistoryMetrics(m *Metrics) HistoryOption {
	return func(h *RequestHistory) {
		h.metrics = m
	}
}

// NewRequestHistory creates a history that serves queries through searcher.
func NewRequestHistory(searcher services.Searcher, opts ...HistoryOption) (*RequestHistory, error) {
	if searcher == nil {
		return nil, fmt.Errorf("searcher cannot be nil")
	}
	h := &RequestHistory{
		searcher: searcher,
		window:   DefaultWindow,
		events:   make([]model.SearchEvent, 0),
		log:      logger.WithComponent("request_history"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// FindTopDocuments searches with predicate and records the outcome.
// A query that fails to parse is not recorded.
func (h *RequestHistory) FindTopDocuments(rawQuery string, predicate model.DocumentPredicate) ([]model.Document, error) {
	docs, _, err := h.FindTopDocumentsTracked(rawQuery, predicate)
	return docs, err
}

// FindTopDocumentsByStatus searches for documents with status and records the outcome.
func (h *RequestHistory) FindTopDocumentsByStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error) {
	return h.FindTopDocuments(rawQuery, model.StatusPredicate(status))
}

// FindTopActualDocuments searches StatusActual documents and records the outcome.
func (h *RequestHistory) FindTopActualDocuments(rawQuery string) ([]model.Document, error) {
	return h.FindTopDocumentsByStatus(rawQuery, model.StatusActual)
}

// FindTopDocumentsTracked is FindTopDocuments that also returns the recorded event.
func (h *RequestHistory) FindTopDocumentsTracked(rawQuery string, predicate model.DocumentPredicate) ([]model.Document, model.SearchEvent, error) {
	if predicate == nil {
		predicate = model.StatusPredicate(model.StatusActual)
	}
	docs, err := h.searcher.FindTopDocuments(rawQuery, predicate)
	if err != nil {
		return nil, model.SearchEvent{}, err
	}
	event := h.record(rawQuery, len(docs))
	return docs, event, nil
}

// Record adds an outcome to the window without running a search.
func (h *RequestHistory) Record(rawQuery string, wasEmpty bool) model.SearchEvent {
	resultCount := 1
	if wasEmpty {
		resultCount = 0
	}
	return h.record(rawQuery, resultCount)
}

func (h *RequestHistory) record(rawQuery string, resultCount int) model.SearchEvent {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clock++
	event := model.SearchEvent{
		QueryID:        uuid.New().String(),
		Query:          rawQuery,
		WasEmpty:       resultCount == 0,
		ResultCount:    resultCount,
		SequenceNumber: h.clock,
	}
	h.events = append(h.events, event)
	if event.WasEmpty {
		h.emptyCount++
	}

	evicted := 0
	for len(h.events) > 0 && h.clock-h.events[0].SequenceNumber >= int64(h.window) {
		if h.events[0].WasEmpty {
			h.emptyCount--
		}
		h.events = h.events[1:]
		evicted++
	}

	if h.metrics != nil {
		h.metrics.HistoryEmptyRequests.Set(float64(h.emptyCount))
	}
	h.log.Debug("request recorded",
		"query_id", event.QueryID,
		"sequence", event.SequenceNumber,
		"empty", event.WasEmpty,
		"evicted", evicted,
	)
	return event
}

// EmptyCount returns the number of retained requests that found no documents.
func (h *RequestHistory) EmptyCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.emptyCount
}

// Len returns the number of retained requests.
func (h *RequestHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.events)
}

// Events returns the retained requests, newest first.
func (h *RequestHistory) Events() []model.SearchEvent {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]model.SearchEvent, len(h.events))
	for i, event := range h.events {
		out[len(h.events)-1-i] = event
	}
	return out
}

// Stats summarizes the window.
func (h *RequestHistory) Stats() model.HistoryStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	stats := model.HistoryStats{
		Window:         h.window,
		Retained:       len(h.events),
		EmptyResults:   h.emptyCount,
		Sequence:       h.clock,
		PopularQueries: h.popularQueries(),
	}
	if stats.Retained > 0 {
		stats.EmptyRatio = float64(stats.EmptyResults) / float64(stats.Retained)
	}
	return stats
}

// popularQueries returns the most frequent retained queries. Caller holds mu.
func (h *RequestHistory) popularQueries() []model.PopularQuery {
	counts := make(map[string]*model.PopularQuery)
	for _, event := range h.events {
		if event.Query == "" {
			continue
		}
		pq, ok := counts[event.Query]
		if !ok {
			pq = &model.PopularQuery{Query: event.Query}
			counts[event.Query] = pq
		}
		pq.SearchCount++
		if event.WasEmpty {
			pq.EmptyCount++
		}
	}

	queries := make([]model.PopularQuery, 0, len(counts))
	for _, pq := range counts {
		queries = append(queries, *pq)
	}
	// Sort by count descending, then query text for a stable order
	sort.Slice(queries, func(i, j int) bool {
		if queries[i].SearchCount != queries[j].SearchCount {
			return queries[i].SearchCount > queries[j].SearchCount
		}
		return queries[i].Query < queries[j].Query
	})

	if len(queries) > maxPopularQueries {
		queries = queries[:maxPopularQueries]
	}
	return queries
}
