package indexing

import (
	"time"

	"github.com/gcbaptista/go-tfidf-search/model"
)

// microBatchSize bounds how many documents are ingested per lock acquisition,
// letting searches interleave with a large ingestion.
const microBatchSize = 10

// DocumentFailure describes a document refused during bulk ingestion.
type DocumentFailure struct {
	DocumentID int    `json:"document_id"`
	Error      string `json:"error"`
	Err        error  `json:"-"`
}

// BulkResult reports the outcome of AddDocuments.
type BulkResult struct {
	Indexed  []int             `json:"indexed"`
	Failed   []DocumentFailure `json:"failed"`
	Duration time.Duration     `json:"-"`
}

// AddDocuments ingests each document independently. A refused document is
// recorded in the result and ingestion continues with the rest.
func (s *Service) AddDocuments(docs []model.DocumentInput) BulkResult {
	start := time.Now()
	result := BulkResult{
		Indexed: make([]int, 0, len(docs)),
		Failed:  make([]DocumentFailure, 0),
	}

	for i := 0; i < len(docs); i += microBatchSize {
		end := i + microBatchSize
		if end > len(docs) {
			end = len(docs)
		}
		s.addDocumentMicroBatch(docs[i:end], &result)
	}

	result.Duration = time.Since(start)
	s.log.Info("bulk ingestion finished",
		"indexed", len(result.Indexed),
		"failed", len(result.Failed),
		"duration", result.Duration,
	)
	return result
}

// addDocumentMicroBatch ingests a small batch while holding the write locks once.
// Outcomes are reported in input order.
func (s *Service) addDocumentMicroBatch(docs []model.DocumentInput, result *BulkResult) {
	prepared := make([][]string, len(docs))
	failures := make([]error, len(docs))
	for i, doc := range docs {
		prepared[i], failures[i] = s.prepareWords(doc)
	}

	s.indexPrepared(docs, prepared, failures)

	for i, doc := range docs {
		if failures[i] != nil {
			s.recordFailure(result, doc.ID, failures[i])
			continue
		}
		result.Indexed = append(result.Indexed, doc.ID)
	}
}

// indexPrepared adds every document without a failure, recording the
// failures found against the current index state.
func (s *Service) indexPrepared(docs []model.DocumentInput, prepared [][]string, failures []error) {
	s.documentStore.Mu.Lock()
	s.invertedIndex.Mu.Lock()
	defer s.documentStore.Mu.Unlock()
	defer s.invertedIndex.Mu.Unlock()

	for i, doc := range docs {
		if failures[i] != nil {
			continue
		}
		failures[i] = s.addDocumentUnsafe(doc, prepared[i])
	}
}

func (s *Service) recordFailure(result *BulkResult, docID int, err error) {
	s.log.Warn("document rejected", "document_id", docID, "error", err)
	result.Failed = append(result.Failed, DocumentFailure{
		DocumentID: docID,
		Error:      err.Error(),
		Err:        err,
	})
}
