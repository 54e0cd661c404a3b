package search

import (
	"math"

	"github.com/gcbaptista/go-tfidf-search/index"
	"github.com/gcbaptista/go-tfidf-search/store"
)

// TFIDFCalculator computes relevance from the current index state.
// Nothing is cached: every call reads the live statistics.
type TFIDFCalculator struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
}

// NewTFIDFCalculator creates a new TF-IDF calculator
func NewTFIDFCalculator(invIndex *index.InvertedIndex, docStore *store.DocumentStore) *TFIDFCalculator {
	return &TFIDFCalculator{
		invertedIndex: invIndex,
		documentStore: docStore,
	}
}

// calculateIDF calculates the inverse document frequency
// IDF = ln(N / df) where N = live documents, df = documents containing term.
// A term found in no live document has IDF 0.
// The caller must hold read locks.
func (calc *TFIDFCalculator) calculateIDF(term string) float64 {
	docFreq := calc.invertedIndex.DocumentFrequency(term)
	if docFreq == 0 {
		return 0.0
	}
	totalDocs := float64(calc.documentStore.Count())
	return math.Log(totalDocs / float64(docFreq))
}

// accumulateRelevance sums tf*idf over the plus-terms and then drops every
// document hit by a minus-term. The caller must hold read locks.
func (calc *TFIDFCalculator) accumulateRelevance(plus, minus []string) map[int]float64 {
	relevance := make(map[int]float64)

	for _, term := range plus {
		postings, ok := calc.invertedIndex.Postings(term)
		if !ok {
			continue
		}
		idf := calc.calculateIDF(term)
		for docID, tf := range postings {
			relevance[docID] += tf * idf
		}
	}

	for _, term := range minus {
		postings, ok := calc.invertedIndex.Postings(term)
		if !ok {
			continue
		}
		for docID := range postings {
			delete(relevance, docID)
		}
	}

	return relevance
}
