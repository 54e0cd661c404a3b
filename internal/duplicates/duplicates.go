// Package duplicates finds documents whose indexed term sets are identical.
package duplicates

import (
	"strings"

	"github.com/gcbaptista/go-tfidf-search/index"
	"github.com/gcbaptista/go-tfidf-search/internal/logger"
)

// Collection is the part of an index duplicate detection needs.
type Collection interface {
	DocumentIDs() []int
	WordFrequencies(docID int) map[string]float64
	RemoveDocuments(docIDs []int) ([]int, error)
}

// FindDuplicates scans documents in ascending ID order and returns the IDs
// whose term set (ignoring frequencies) was already seen. The lowest ID of
// each term set is never reported.
func FindDuplicates(c Collection) []int {
	seen := make(map[string]int)
	duplicates := make([]int, 0)

	for _, docID := range c.DocumentIDs() {
		key := termSetKey(c.WordFrequencies(docID))
		if original, ok := seen[key]; ok {
			logger.WithComponent("duplicates").Debug("duplicate document found", "document_id", docID, "duplicate_of", original)
			duplicates = append(duplicates, docID)
			continue
		}
		seen[key] = docID
	}
	return duplicates
}

// RemoveDuplicates removes every document reported by FindDuplicates in one
// batch and returns the removed IDs in ascending order.
func RemoveDuplicates(c Collection) ([]int, error) {
	duplicates := FindDuplicates(c)
	if len(duplicates) == 0 {
		return []int{}, nil
	}

	removed, err := c.RemoveDocuments(duplicates)
	log := logger.WithComponent("duplicates")
	for _, docID := range removed {
		log.Info("found duplicate document", "document_id", docID)
	}
	return removed, err
}

// termSetKey builds a canonical key for a term set. Indexed terms never
// contain spaces, so a space join is unambiguous.
func termSetKey(frequencies map[string]float64) string {
	return strings.Join(index.TermFrequencies(frequencies).Terms(), " ")
}
