// Package testing provides fixtures and helpers for testing the search server.
package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-tfidf-search/internal/engine"
	"github.com/gcbaptista/go-tfidf-search/model"
	"github.com/gcbaptista/go-tfidf-search/services"
)

// CreateTestServer creates an empty search server with the given stop words
func CreateTestServer(t *testing.T, stopWords string) *engine.SearchServer {
	t.Helper()
	server, err := engine.NewSearchServerFromText(stopWords)
	require.NoError(t, err, "Failed to create test server")
	return server
}

// AddTestDocuments adds documents one by one and fails the test on any rejection
func AddTestDocuments(t *testing.T, indexer services.Indexer, docs []model.DocumentInput) {
	t.Helper()
	for _, doc := range docs {
		require.NoError(t, indexer.AddDocument(doc), "Failed to add document %d", doc.ID)
	}
}

func actual(id int, text string, ratings ...int) model.DocumentInput {
	return model.DocumentInput{ID: id, Text: text, Status: model.StatusActual, Ratings: ratings}
}

// PetDocuments is the five-document collection used with the stop words "and with".
func PetDocuments() []model.DocumentInput {
	return []model.DocumentInput{
		actual(1, "funny pet and nasty rat", 7, 2, 7),
		actual(2, "funny pet with curly hair", 1, 2, 3),
		actual(3, "big cat nasty hair", 1, 2, 8),
		actual(4, "big dog cat Vladislav", 1, 3, 2),
		actual(5, "big dog hamster Borya", 1, 1, 1),
	}
}

// SparrowDocuments is the collection used with the stop words "and in at".
func SparrowDocuments() []model.DocumentInput {
	return []model.DocumentInput{
		actual(1, "curly cat curly tail", 7, 2, 7),
		actual(2, "curly dog and fancy collar", 1, 2, 3),
		actual(3, "big cat fancy collar ", 1, 2, 8),
		actual(4, "big dog sparrow Eugene", 1, 3, 2),
		actual(5, "big dog sparrow Vasiliy", 1, 1, 1),
	}
}

// DuplicateDocuments holds four duplicates (IDs 3, 4, 5 and 7) under the stop words "and with".
func DuplicateDocuments() []model.DocumentInput {
	return []model.DocumentInput{
		actual(1, "funny pet and nasty rat", 7, 2, 7),
		actual(2, "funny pet with curly hair", 1, 2),
		actual(3, "funny pet with curly hair", 1, 2),
		actual(4, "funny pet and curly hair", 1, 2),
		actual(5, "funny funny pet and nasty nasty rat", 1, 2),
		actual(6, "funny pet and not very nasty rat", 1, 2),
		actual(7, "very nasty rat and not very funny pet", 1, 2),
		actual(8, "pet with rat and rat and rat", 1, 2),
		actual(9, "nasty rat with curly hair", 1, 2),
	}
}

// SearchTestCase represents a test case for search operations
type SearchTestCase struct {
	Name        string
	Query       string
	Status      model.DocumentStatus
	ExpectedIDs []int
	ExpectError error
}

// RunSearchTests runs a suite of search tests against a searcher
func RunSearchTests(t *testing.T, searcher services.Searcher, tests []SearchTestCase) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			results, err := searcher.FindTopDocumentsByStatus(tt.Query, tt.Status)
			if tt.ExpectError != nil {
				assert.ErrorIs(t, err, tt.ExpectError)
				return
			}
			require.NoError(t, err, "Search should not fail")

			ids := make([]int, len(results))
			for i, doc := range results {
				ids[i] = doc.ID
			}
			assert.Equal(t, tt.ExpectedIDs, ids, "Result IDs should match")
		})
	}
}
