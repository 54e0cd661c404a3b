package search

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-tfidf-search/index"
	internalErrors "github.com/gcbaptista/go-tfidf-search/internal/errors"
	"github.com/gcbaptista/go-tfidf-search/internal/indexing"
	"github.com/gcbaptista/go-tfidf-search/internal/query"
	"github.com/gcbaptista/go-tfidf-search/internal/tokenizer"
	"github.com/gcbaptista/go-tfidf-search/model"
	"github.com/gcbaptista/go-tfidf-search/store"
)

// --- Test Helpers ---

// setupTestSearchService creates a new search service with an indexing service
// to easily add documents for testing search functionality.
func setupTestSearchService(t *testing.T, stopWordsText string) (*Service, *indexing.Service) {
	t.Helper()
	stopWords := tokenizer.NewStopWordSet(tokenizer.SplitIntoWords(stopWordsText))

	invIdx := index.NewInvertedIndex()
	docStore := store.NewDocumentStore()

	indexerService, err := indexing.NewService(invIdx, docStore, stopWords)
	require.NoError(t, err)

	searchService, err := NewService(invIdx, docStore, query.NewParser(stopWords))
	require.NoError(t, err)
	return searchService, indexerService
}

func addDocs(t *testing.T, indexer *indexing.Service, docs ...model.DocumentInput) {
	t.Helper()
	for _, doc := range docs {
		require.NoError(t, indexer.AddDocument(doc))
	}
}

func petDocuments() []model.DocumentInput {
	return []model.DocumentInput{
		{ID: 1, Text: "funny pet and nasty rat", Status: model.StatusActual, Ratings: []int{7, 2, 7}},
		{ID: 2, Text: "funny pet with curly hair", Status: model.StatusActual, Ratings: []int{1, 2, 3}},
		{ID: 3, Text: "big cat nasty hair", Status: model.StatusActual, Ratings: []int{1, 2, 8}},
		{ID: 4, Text: "big dog cat Vladislav", Status: model.StatusActual, Ratings: []int{1, 3, 2}},
		{ID: 5, Text: "big dog hamster Borya", Status: model.StatusActual, Ratings: []int{1, 1, 1}},
	}
}

func ids(docs []model.Document) []int {
	out := make([]int, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.ID)
	}
	return out
}

// --- Test Cases ---

func TestNewService(t *testing.T) {
	_, err := NewService(nil, store.NewDocumentStore(), query.NewParser(nil))
	assert.Error(t, err)
	_, err = NewService(index.NewInvertedIndex(), nil, query.NewParser(nil))
	assert.Error(t, err)
	_, err = NewService(index.NewInvertedIndex(), store.NewDocumentStore(), nil)
	assert.Error(t, err)
}

func TestFindTopDocuments_Relevance(t *testing.T) {
	searcher, indexer := setupTestSearchService(t, "and with")
	addDocs(t, indexer, petDocuments()...)

	results, err := searcher.FindTopDocuments("curly dog", nil)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 5}, ids(results))

	curlyRelevance := 0.25 * math.Log(5.0/1.0)
	dogRelevance := 0.25 * math.Log(5.0/2.0)
	assert.InDelta(t, curlyRelevance, results[0].Relevance, 1e-9)
	assert.InDelta(t, dogRelevance, results[1].Relevance, 1e-9)
	assert.InDelta(t, dogRelevance, results[2].Relevance, 1e-9)

	// Equal relevance: higher rating first
	assert.Equal(t, 2, results[1].Rating)
	assert.Equal(t, 1, results[2].Rating)
}

func TestFindTopDocuments_MinusTermsExcludeAbsolutely(t *testing.T) {
	searcher, indexer := setupTestSearchService(t, "and with")
	addDocs(t, indexer, petDocuments()...)

	results, err := searcher.FindTopDocuments("curly dog -Borya", nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, ids(results))

	// A document hit by both a plus and a minus term disappears entirely
	results, err = searcher.FindTopDocuments("nasty -rat", nil)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids(results))

	// Minus-only query finds nothing
	results, err = searcher.FindTopDocuments("-rat", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindTopDocuments_CapAndTieBreak(t *testing.T) {
	searcher, indexer := setupTestSearchService(t, "")
	for i := 0; i < 7; i++ {
		addDocs(t, indexer, model.DocumentInput{
			ID:      i,
			Text:    "shared",
			Status:  model.StatusActual,
			Ratings: []int{i * 10},
		})
	}

	// Every document contains the term, so IDF and all relevances are zero
	results, err := searcher.FindTopDocuments("shared", nil)
	require.NoError(t, err)
	assert.Len(t, results, MaxResultDocumentCount)
	assert.Equal(t, []int{6, 5, 4, 3, 2}, ids(results))
}

func TestFindTopDocuments_PredicateAppliedBeforeCap(t *testing.T) {
	searcher, indexer := setupTestSearchService(t, "")
	for i := 1; i <= 12; i++ {
		status := model.StatusActual
		if i%2 == 0 {
			status = model.StatusBanned
		}
		addDocs(t, indexer, model.DocumentInput{
			ID:      i,
			Text:    fmt.Sprintf("cat word%d", i),
			Status:  status,
			Ratings: []int{i},
		})
	}

	results, err := searcher.FindTopDocumentsByStatus("cat", model.StatusBanned)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 10, 8, 6, 4}, ids(results))

	results, err = searcher.FindTopDocuments("cat", func(id int, _ model.DocumentStatus, rating int) bool {
		return id%3 == 0 && rating > 3
	})
	require.NoError(t, err)
	assert.Equal(t, []int{12, 9, 6}, ids(results))

	// nil predicate defaults to StatusActual
	results, err = searcher.FindTopDocuments("cat", nil)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 9, 7, 5, 3}, ids(results))
}

func TestFindTopDocuments_Ordering(t *testing.T) {
	searcher, indexer := setupTestSearchService(t, "and in at")
	addDocs(t, indexer,
		model.DocumentInput{ID: 1, Text: "curly cat curly tail", Ratings: []int{7, 2, 7}},
		model.DocumentInput{ID: 2, Text: "curly dog and fancy collar", Ratings: []int{1, 2, 3}},
		model.DocumentInput{ID: 3, Text: "big cat fancy collar ", Ratings: []int{1, 2, 8}},
		model.DocumentInput{ID: 4, Text: "big dog sparrow Eugene", Ratings: []int{1, 3, 2}},
		model.DocumentInput{ID: 5, Text: "big dog sparrow Vasiliy", Ratings: []int{1, 1, 1}},
	)

	for _, rawQuery := range []string{"curly dog", "big collar", "sparrow", "cat -tail", "big dog cat"} {
		results, err := searcher.FindTopDocuments(rawQuery, nil)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(results), MaxResultDocumentCount)
		for i := 1; i < len(results); i++ {
			prev, cur := results[i-1], results[i]
			if math.Abs(prev.Relevance-cur.Relevance) < RelevanceTolerance {
				assert.GreaterOrEqual(t, prev.Rating, cur.Rating, "query %q", rawQuery)
			} else {
				assert.Greater(t, prev.Relevance, cur.Relevance, "query %q", rawQuery)
			}
		}
	}
}

func TestFindTopDocuments_EmptyAndMalformed(t *testing.T) {
	searcher, indexer := setupTestSearchService(t, "and in on")
	addDocs(t, indexer, model.DocumentInput{ID: 1, Text: "big cat fluffy tail", Ratings: []int{7, 2, 7}})

	results, err := searcher.FindTopDocuments("", nil)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = searcher.FindTopDocuments("and in", nil)
	require.NoError(t, err)
	assert.Empty(t, results)

	for _, rawQuery := range []string{"fluffy --cat", "fluffy -", "-"} {
		_, err := searcher.FindTopDocuments(rawQuery, nil)
		assert.True(t, errors.Is(err, internalErrors.ErrMalformedQuery), "query %q", rawQuery)
	}
}

func TestFindTopDocuments_ExceptionScenario(t *testing.T) {
	searcher, indexer := setupTestSearchService(t, "and in on")
	addDocs(t, indexer,
		model.DocumentInput{ID: 1, Text: "big cat fluffy tail", Ratings: []int{7, 2, 7}},
		model.DocumentInput{ID: 4, Text: "big dog starleng evgeniy", Ratings: []int{1, 1, 1}},
	)

	results, err := searcher.FindTopDocuments("fluffy -dog", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)
	assert.Equal(t, 5, results[0].Rating)
	assert.InDelta(t, 0.25*math.Log(2), results[0].Relevance, 1e-9)
}

func TestMatchDocument(t *testing.T) {
	searcher, indexer := setupTestSearchService(t, "and in on")
	addDocs(t, indexer,
		model.DocumentInput{ID: 1, Text: "big cat fluffy tail", Status: model.StatusActual},
		model.DocumentInput{ID: 4, Text: "big dog starleng evgeniy", Status: model.StatusBanned},
	)

	tests := []struct {
		name       string
		query      string
		docID      int
		wantWords  []string
		wantStatus model.DocumentStatus
	}{
		{"plus hit", "fluffy dog", 1, []string{"fluffy"}, model.StatusActual},
		{"other doc", "fluffy dog", 4, []string{"dog"}, model.StatusBanned},
		{"minus voids match", "big fluffy -cat", 1, []string{}, model.StatusActual},
		{"minus absent", "stylish -cat", 4, []string{}, model.StatusBanned},
		{"sorted words", "tail big cat", 1, []string{"big", "cat", "tail"}, model.StatusActual},
		{"stop words ignored", "big and in", 4, []string{"big"}, model.StatusBanned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := searcher.MatchDocument(tt.query, tt.docID)
			require.NoError(t, err)
			assert.Equal(t, tt.docID, match.DocumentID)
			assert.Equal(t, tt.wantWords, match.Words)
			assert.Equal(t, tt.wantStatus, match.Status)
		})
	}
}

func TestMatchDocument_Errors(t *testing.T) {
	searcher, indexer := setupTestSearchService(t, "")
	addDocs(t, indexer, model.DocumentInput{ID: 1, Text: "big cat"})

	_, err := searcher.MatchDocument("cat", 2)
	assert.True(t, errors.Is(err, internalErrors.ErrUnknownDocument))

	_, err = searcher.MatchDocument("stylish --dog", 1)
	assert.True(t, errors.Is(err, internalErrors.ErrMalformedQuery))

	_, err = searcher.MatchDocument("fluffy - tail", 1)
	assert.True(t, errors.Is(err, internalErrors.ErrMalformedQuery))
}

func TestInverseDocumentFrequency(t *testing.T) {
	searcher, indexer := setupTestSearchService(t, "and with")
	addDocs(t, indexer, petDocuments()...)

	assert.InDelta(t, math.Log(5.0/3.0), searcher.InverseDocumentFrequency("big"), 1e-12)
	assert.InDelta(t, math.Log(5.0), searcher.InverseDocumentFrequency("rat"), 1e-12)
	assert.Equal(t, 0.0, searcher.InverseDocumentFrequency("unicorn"))
	assert.Equal(t, 0.0, searcher.InverseDocumentFrequency("and"), "stop words are never indexed")

	require.NoError(t, indexer.RemoveDocument(1))
	idf := searcher.InverseDocumentFrequency("rat")
	assert.Equal(t, 0.0, idf, "term of a removed document")
	assert.False(t, math.IsNaN(idf))

	// Recomputed against the new document count
	assert.InDelta(t, math.Log(4.0/3.0), searcher.InverseDocumentFrequency("big"), 1e-12)
}
