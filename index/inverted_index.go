package index

import (
	"fmt"
	"sync"
)

// InvertedIndex holds the term/document frequency relation in two views:
// term -> document -> frequency and document -> term -> frequency.
// Both views are only mutated together through AddDocument and RemoveDocument,
// so every (term, document, frequency) triple is present in both or in neither.
//
// Methods do not lock; callers hold Mu (read lock for lookups, write lock for
// mutations), the same way the indexing and search services do.
type InvertedIndex struct {
	Mu        sync.RWMutex
	termToDoc map[string]Postings
	docToTerm map[int]TermFrequencies
}

// NewInvertedIndex creates an empty index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		termToDoc: make(map[string]Postings),
		docToTerm: make(map[int]TermFrequencies),
	}
}

// AddDocument records the words of a document. Every occurrence of a word adds
// 1/len(words) to its frequency. words must be non-empty and the document must
// not already be indexed.
func (ii *InvertedIndex) AddDocument(docID int, words []string) error {
	if len(words) == 0 {
		return fmt.Errorf("document %d has no indexable words", docID)
	}
	if _, exists := ii.docToTerm[docID]; exists {
		return fmt.Errorf("document %d is already indexed", docID)
	}

	invertedWordCount := 1.0 / float64(len(words))
	frequencies := make(TermFrequencies)
	for _, word := range words {
		frequencies[word] += invertedWordCount
	}

	for term, freq := range frequencies {
		postings, ok := ii.termToDoc[term]
		if !ok {
			postings = make(Postings)
			ii.termToDoc[term] = postings
		}
		postings[docID] = freq
	}
	ii.docToTerm[docID] = frequencies
	return nil
}

// RemoveDocument deletes the document from both views. Terms left without any
// posting are dropped. It reports whether the document was indexed.
func (ii *InvertedIndex) RemoveDocument(docID int) bool {
	frequencies, exists := ii.docToTerm[docID]
	if !exists {
		return false
	}

	for term := range frequencies {
		postings := ii.termToDoc[term]
		delete(postings, docID)
		if len(postings) == 0 {
			delete(ii.termToDoc, term)
		}
	}
	delete(ii.docToTerm, docID)
	return true
}

// Postings returns the postings of term. The returned map must not be modified.
func (ii *InvertedIndex) Postings(term string) (Postings, bool) {
	postings, ok := ii.termToDoc[term]
	return postings, ok
}

// DocumentFrequency returns the number of documents containing term.
func (ii *InvertedIndex) DocumentFrequency(term string) int {
	return len(ii.termToDoc[term])
}

// Contains reports whether term occurs in the document.
func (ii *InvertedIndex) Contains(term string, docID int) bool {
	_, ok := ii.termToDoc[term][docID]
	return ok
}

// TermFrequencies returns a copy of the document's term frequencies, or an
// empty map for a document that is not indexed.
func (ii *InvertedIndex) TermFrequencies(docID int) TermFrequencies {
	frequencies, ok := ii.docToTerm[docID]
	if !ok {
		return TermFrequencies{}
	}
	return frequencies.Copy()
}

// HasDocument reports whether the document is indexed.
func (ii *InvertedIndex) HasDocument(docID int) bool {
	_, ok := ii.docToTerm[docID]
	return ok
}

// TermCount returns the number of distinct indexed terms.
func (ii *InvertedIndex) TermCount() int {
	return len(ii.termToDoc)
}

// DocumentCount returns the number of indexed documents.
func (ii *InvertedIndex) DocumentCount() int {
	return len(ii.docToTerm)
}

// ForEachTriple calls fn for every (term, document, frequency) triple of the
// term view. Iteration order is unspecified.
func (ii *InvertedIndex) ForEachTriple(fn func(term string, docID int, freq float64)) {
	for term, postings := range ii.termToDoc {
		for docID, freq := range postings {
			fn(term, docID, freq)
		}
	}
}

// CheckConsistency verifies that both views describe the same relation.
func (ii *InvertedIndex) CheckConsistency() error {
	for term, postings := range ii.termToDoc {
		if len(postings) == 0 {
			return fmt.Errorf("term %q has an empty posting list", term)
		}
	}

	triples := 0
	var mismatch error
	ii.ForEachTriple(func(term string, docID int, freq float64) {
		triples++
		if mismatch != nil {
			return
		}
		reverse, ok := ii.docToTerm[docID][term]
		switch {
		case !ok:
			mismatch = fmt.Errorf("term %q lists document %d which does not list the term", term, docID)
		case reverse != freq:
			mismatch = fmt.Errorf("term %q in document %d has frequency %v but reverse view has %v", term, docID, freq, reverse)
		}
	})
	if mismatch != nil {
		return mismatch
	}

	reverseTriples := 0
	for _, frequencies := range ii.docToTerm {
		reverseTriples += len(frequencies)
	}
	if triples != reverseTriples {
		return fmt.Errorf("term view holds %d entries but document view holds %d", triples, reverseTriples)
	}
	return nil
}
