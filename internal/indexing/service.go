package indexing

import (
	"fmt"
	"log/slog"

	"github.com/gcbaptista/go-tfidf-search/index"
	"github.com/gcbaptista/go-tfidf-search/internal/errors"
	"github.com/gcbaptista/go-tfidf-search/internal/logger"
	"github.com/gcbaptista/go-tfidf-search/internal/tokenizer"
	"github.com/gcbaptista/go-tfidf-search/model"
	"github.com/gcbaptista/go-tfidf-search/store"
)

// Service implements ingest and removal for a single index.
// It fulfills the services.Indexer interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	stopWords     tokenizer.StopWordSet
	log           *slog.Logger
}

// NewService creates a new indexing Service.
func NewService(invertedIndex *index.InvertedIndex, documentStore *store.DocumentStore, stopWords tokenizer.StopWordSet) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if documentStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if stopWords == nil {
		stopWords = tokenizer.StopWordSet{}
	}
	return &Service{
		invertedIndex: invertedIndex,
		documentStore: documentStore,
		stopWords:     stopWords,
		log:           logger.WithComponent("indexing"),
	}, nil
}

// AddDocument ingests one document. On failure neither the inverted index nor
// the document store is modified.
func (s *Service) AddDocument(doc model.DocumentInput) error {
	words, err := s.prepareWords(doc)
	if err != nil {
		return err
	}

	// Lock order: document store, then inverted index (same as readers)
	s.documentStore.Mu.Lock()
	s.invertedIndex.Mu.Lock()
	defer s.documentStore.Mu.Unlock()
	defer s.invertedIndex.Mu.Unlock()

	return s.addDocumentUnsafe(doc, words)
}

// RemoveDocument deletes a document from the inverted index and the document store.
func (s *Service) RemoveDocument(docID int) error {
	s.documentStore.Mu.Lock()
	s.invertedIndex.Mu.Lock()
	defer s.documentStore.Mu.Unlock()
	defer s.invertedIndex.Mu.Unlock()

	return s.removeDocumentUnsafe(docID)
}

// RemoveDocuments deletes a batch of documents under a single lock so no reader
// observes a partially applied batch. Unknown IDs are reported and skipped.
func (s *Service) RemoveDocuments(docIDs []int) ([]int, error) {
	s.documentStore.Mu.Lock()
	s.invertedIndex.Mu.Lock()
	defer s.documentStore.Mu.Unlock()
	defer s.invertedIndex.Mu.Unlock()

	removed := make([]int, 0, len(docIDs))
	var firstErr error
	for _, docID := range docIDs {
		if err := s.removeDocumentUnsafe(docID); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		removed = append(removed, docID)
	}
	return removed, firstErr
}

// prepareWords validates the document fields that do not depend on index state
// and returns its indexable words.
func (s *Service) prepareWords(doc model.DocumentInput) ([]string, error) {
	if doc.ID < 0 {
		return nil, errors.NewInvalidDocumentError(doc.ID, "document id is negative")
	}

	words := tokenizer.FilterStopWords(doc.Text, s.stopWords)
	for _, word := range words {
		if !tokenizer.IsValidWord(word) {
			return nil, errors.NewInvalidDocumentError(doc.ID, fmt.Sprintf("word %q contains control characters", word))
		}
	}
	if len(words) == 0 {
		return nil, errors.NewInvalidDocumentError(doc.ID, "document has no indexable words")
	}
	return words, nil
}

// addDocumentUnsafe assumes the caller holds write locks on both structures.
func (s *Service) addDocumentUnsafe(doc model.DocumentInput, words []string) error {
	if s.documentStore.Has(doc.ID) || s.invertedIndex.HasDocument(doc.ID) {
		return errors.NewInvalidDocumentError(doc.ID, "document id is already in use")
	}

	if err := s.invertedIndex.AddDocument(doc.ID, words); err != nil {
		return errors.NewInvalidDocumentError(doc.ID, err.Error())
	}
	s.documentStore.Put(store.DocumentRecord{
		ID:            doc.ID,
		AverageRating: store.AverageRating(doc.Ratings),
		Status:        doc.Status,
	})

	s.log.Debug("document indexed", "document_id", doc.ID, "words", len(words), "status", doc.Status.String())
	return nil
}

// removeDocumentUnsafe assumes the caller holds write locks on both structures.
func (s *Service) removeDocumentUnsafe(docID int) error {
	if !s.documentStore.Has(docID) {
		return errors.NewUnknownDocumentError(docID)
	}
	s.invertedIndex.RemoveDocument(docID)
	s.documentStore.Delete(docID)

	s.log.Debug("document removed", "document_id", docID)
	return nil
}
