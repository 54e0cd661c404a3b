package search

import (
	"context"
	"fmt"
	"time"

	"github.com/gcbaptista/go-tfidf-search/model"
)

// MultiSearch executes multiple named queries in parallel against the same index.
// Each query is parsed independently; the first malformed query aborts the batch.
func (s *Service) MultiSearch(ctx context.Context, queries []NamedQuery) (*MultiSearchResult, error) {
	startTime := time.Now()

	if len(queries) == 0 {
		return nil, fmt.Errorf("at least one query is required")
	}
	seen := make(map[string]struct{}, len(queries))
	for _, nq := range queries {
		if nq.Name == "" {
			return nil, fmt.Errorf("each query must have a non-empty name")
		}
		if _, dup := seen[nq.Name]; dup {
			return nil, fmt.Errorf("duplicate query name '%s'", nq.Name)
		}
		seen[nq.Name] = struct{}{}
	}

	type queryResult struct {
		name string
		docs []model.Document
		err  error
	}

	resultChan := make(chan queryResult, len(queries))

	for _, namedQuery := range queries {
		go func(nq NamedQuery) {
			predicate := model.StatusPredicate(model.StatusActual)
			if nq.Status != nil {
				predicate = model.StatusPredicate(*nq.Status)
			}
			docs, err := s.FindTopDocuments(nq.Query, predicate)
			resultChan <- queryResult{name: nq.Name, docs: docs, err: err}
		}(namedQuery)
	}

	results := make(map[string][]model.Document, len(queries))
	for i := 0; i < len(queries); i++ {
		select {
		case qr := <-resultChan:
			if qr.err != nil {
				return nil, fmt.Errorf("error executing query '%s': %w", qr.name, qr.err)
			}
			results[qr.name] = qr.docs
		case <-ctx.Done():
			return nil, fmt.Errorf("multi-search cancelled: %w", ctx.Err())
		}
	}

	return &MultiSearchResult{
		Results:          results,
		TotalQueries:     len(queries),
		ProcessingTimeMs: float64(time.Since(startTime).Nanoseconds()) / 1e6,
	}, nil
}
