package index

import "sort"

// Postings maps a document ID to the term frequency of one term in that document.
type Postings map[int]float64

// TermFrequencies maps a term to its frequency within one document.
// Frequencies of all terms of a document sum to 1.
type TermFrequencies map[string]float64

// DocumentIDs returns the posting document IDs in ascending order.
func (p Postings) DocumentIDs() []int {
	ids := make([]int, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Terms returns the terms in ascending lexical order.
func (tf TermFrequencies) Terms() []string {
	terms := make([]string, 0, len(tf))
	for term := range tf {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Copy returns an independent copy of the frequencies.
func (tf TermFrequencies) Copy() TermFrequencies {
	out := make(TermFrequencies, len(tf))
	for term, freq := range tf {
		out[term] = freq
	}
	return out
}
