package store

import (
	"sort"
	"sync"

	"github.com/gcbaptista/go-tfidf-search/model"
)

// DocumentRecord is the metadata kept for a live document.
// It is created on ingest and never modified afterwards.
type DocumentRecord struct {
	ID            int
	AverageRating int
	Status        model.DocumentStatus
}

// DocumentStore holds the metadata table and the ascending set of live IDs.
// Like the inverted index, methods do not lock; callers hold Mu.
type DocumentStore struct {
	Mu   sync.RWMutex
	docs map[int]DocumentRecord
	ids  []int // ascending
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		docs: make(map[int]DocumentRecord),
		ids:  make([]int, 0),
	}
}

// Put stores a record. It reports false if the ID is already present.
func (ds *DocumentStore) Put(record DocumentRecord) bool {
	if _, exists := ds.docs[record.ID]; exists {
		return false
	}
	ds.docs[record.ID] = record

	pos := sort.SearchInts(ds.ids, record.ID)
	ds.ids = append(ds.ids, 0)
	copy(ds.ids[pos+1:], ds.ids[pos:])
	ds.ids[pos] = record.ID
	return true
}

// Delete removes a record. It reports false if the ID was not present.
func (ds *DocumentStore) Delete(id int) bool {
	if _, exists := ds.docs[id]; !exists {
		return false
	}
	delete(ds.docs, id)

	pos := sort.SearchInts(ds.ids, id)
	ds.ids = append(ds.ids[:pos], ds.ids[pos+1:]...)
	return true
}

// Get returns the record for id.
func (ds *DocumentStore) Get(id int) (DocumentRecord, bool) {
	record, ok := ds.docs[id]
	return record, ok
}

// Has reports whether id is live.
func (ds *DocumentStore) Has(id int) bool {
	_, ok := ds.docs[id]
	return ok
}

// Count returns the number of live documents.
func (ds *DocumentStore) Count() int {
	return len(ds.docs)
}

// IDs returns a copy of the live document IDs in ascending order.
func (ds *DocumentStore) IDs() []int {
	out := make([]int, len(ds.ids))
	copy(out, ds.ids)
	return out
}

// AverageRating returns the mean of ratings truncated toward zero, or 0 for no ratings.
func AverageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating
	}
	return sum / len(ratings)
}
