package search

import (
	"fmt"
	"math"
	"sort"

	"github.com/gcbaptista/go-tfidf-search/index"
	"github.com/gcbaptista/go-tfidf-search/internal/errors"
	"github.com/gcbaptista/go-tfidf-search/internal/query"
	"github.com/gcbaptista/go-tfidf-search/model"
	"github.com/gcbaptista/go-tfidf-search/store"
)

const (
	// MaxResultDocumentCount caps the number of documents returned by a search.
	MaxResultDocumentCount = 5

	// RelevanceTolerance is the relevance difference under which two documents
	// are ordered by rating instead.
	RelevanceTolerance = 1e-6
)

// Service implements ranked search and matching for a single index.
// It fulfills the services.Searcher interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	parser        *query.Parser
	calculator    *TFIDFCalculator
}

// NewService creates a new search Service.
func NewService(invIndex *index.InvertedIndex, docStore *store.DocumentStore, parser *query.Parser) (*Service, error) {
	if invIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if docStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if parser == nil {
		return nil, fmt.Errorf("query parser cannot be nil")
	}
	return &Service{
		invertedIndex: invIndex,
		documentStore: docStore,
		parser:        parser,
		calculator:    NewTFIDFCalculator(invIndex, docStore),
	}, nil
}

// FindTopDocuments parses rawQuery and returns at most MaxResultDocumentCount
// documents accepted by predicate, ordered by relevance (descending) and, for
// relevances closer than RelevanceTolerance, by rating (descending).
// A nil predicate keeps only StatusActual documents.
func (s *Service) FindTopDocuments(rawQuery string, predicate model.DocumentPredicate) ([]model.Document, error) {
	q, err := s.parser.Parse(rawQuery)
	if err != nil {
		return nil, err
	}
	return s.Search(q, predicate), nil
}

// FindTopDocumentsByStatus keeps only documents with the given status.
func (s *Service) FindTopDocumentsByStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error) {
	return s.FindTopDocuments(rawQuery, model.StatusPredicate(status))
}

// Search ranks an already parsed query. It has no side effects.
// The predicate runs after the locks are released, so it may call back
// into the index.
func (s *Service) Search(q query.Query, predicate model.DocumentPredicate) []model.Document {
	if predicate == nil {
		predicate = model.StatusPredicate(model.StatusActual)
	}

	candidates := s.collectCandidates(q)
	rankCandidates(candidates)

	results := make([]model.Document, 0, MaxResultDocumentCount)
	for _, candidate := range candidates {
		if !predicate(candidate.doc.ID, candidate.status, candidate.doc.Rating) {
			continue
		}
		results = append(results, candidate.doc)
		if len(results) == MaxResultDocumentCount {
			break
		}
	}
	return results
}

// collectCandidates snapshots every scored document with its status and
// rating under the read locks.
func (s *Service) collectCandidates(q query.Query) []candidateHit {
	s.documentStore.Mu.RLock()
	s.invertedIndex.Mu.RLock()
	defer s.documentStore.Mu.RUnlock()
	defer s.invertedIndex.Mu.RUnlock()

	relevance := s.calculator.accumulateRelevance(q.Plus, q.Minus)

	candidates := make([]candidateHit, 0, len(relevance))
	for docID, score := range relevance {
		record, ok := s.documentStore.Get(docID)
		if !ok {
			continue
		}
		candidates = append(candidates, candidateHit{
			doc:    model.Document{ID: docID, Relevance: score, Rating: record.AverageRating},
			status: record.Status,
		})
	}
	return candidates
}

// rankCandidates orders candidates deterministically: candidates start in
// ascending ID order, then a stable sort applies relevance and rating.
func rankCandidates(candidates []candidateHit) {
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].doc.ID < candidates[j].doc.ID
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		left, right := candidates[i].doc, candidates[j].doc
		if math.Abs(left.Relevance-right.Relevance) < RelevanceTolerance {
			return left.Rating > right.Rating
		}
		return left.Relevance > right.Relevance
	})
}

// MatchDocument returns the plus-terms of rawQuery present in the document,
// in lexical order. If any minus-term is present the word list is empty.
func (s *Service) MatchDocument(rawQuery string, docID int) (model.MatchResult, error) {
	q, err := s.parser.Parse(rawQuery)
	if err != nil {
		return model.MatchResult{}, err
	}

	s.documentStore.Mu.RLock()
	s.invertedIndex.Mu.RLock()
	defer s.documentStore.Mu.RUnlock()
	defer s.invertedIndex.Mu.RUnlock()

	record, ok := s.documentStore.Get(docID)
	if !ok {
		return model.MatchResult{}, errors.NewUnknownDocumentError(docID)
	}

	result := model.MatchResult{
		DocumentID: docID,
		Words:      make([]string, 0, len(q.Plus)),
		Status:     record.Status,
	}

	for _, term := range q.Minus {
		if s.invertedIndex.Contains(term, docID) {
			return result, nil
		}
	}
	for _, term := range q.Plus {
		if s.invertedIndex.Contains(term, docID) {
			result.Words = append(result.Words, term)
		}
	}
	return result, nil
}

// InverseDocumentFrequency returns ln(live documents / documents containing term),
// or 0 when no live document contains term.
func (s *Service) InverseDocumentFrequency(term string) float64 {
	s.documentStore.Mu.RLock()
	s.invertedIndex.Mu.RLock()
	defer s.documentStore.Mu.RUnlock()
	defer s.invertedIndex.Mu.RUnlock()

	return s.calculator.calculateIDF(term)
}
