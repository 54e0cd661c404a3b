package index

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumFrequencies(tf TermFrequencies) float64 {
	total := 0.0
	for _, freq := range tf {
		total += freq
	}
	return total
}

func TestInvertedIndex_AddDocument(t *testing.T) {
	ii := NewInvertedIndex()

	require.NoError(t, ii.AddDocument(1, []string{"curly", "cat", "curly", "tail"}))
	require.NoError(t, ii.AddDocument(2, []string{"curly", "dog"}))

	tf := ii.TermFrequencies(1)
	assert.InDelta(t, 0.5, tf["curly"], 1e-12)
	assert.InDelta(t, 0.25, tf["cat"], 1e-12)
	assert.InDelta(t, 0.25, tf["tail"], 1e-12)
	assert.InDelta(t, 1.0, sumFrequencies(tf), 1e-9)

	assert.Equal(t, 2, ii.DocumentFrequency("curly"))
	assert.Equal(t, 1, ii.DocumentFrequency("dog"))
	assert.Equal(t, 0, ii.DocumentFrequency("bird"))
	assert.True(t, ii.Contains("dog", 2))
	assert.False(t, ii.Contains("dog", 1))
	assert.Equal(t, 4, ii.TermCount())
	assert.Equal(t, 2, ii.DocumentCount())
	assert.NoError(t, ii.CheckConsistency())

	postings, ok := ii.Postings("curly")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, postings.DocumentIDs())
}

func TestInvertedIndex_AddDocumentRejects(t *testing.T) {
	ii := NewInvertedIndex()
	require.NoError(t, ii.AddDocument(1, []string{"cat"}))

	assert.Error(t, ii.AddDocument(1, []string{"dog"}), "duplicate id")
	assert.Error(t, ii.AddDocument(2, nil), "no words")

	// Rejected calls leave the relation untouched
	assert.False(t, ii.HasDocument(2))
	assert.Equal(t, 0, ii.DocumentFrequency("dog"))
	assert.NoError(t, ii.CheckConsistency())
}

func TestInvertedIndex_RemoveDocumentRoundTrip(t *testing.T) {
	ii := NewInvertedIndex()
	require.NoError(t, ii.AddDocument(1, []string{"big", "cat"}))

	before := snapshot(ii)

	require.NoError(t, ii.AddDocument(2, []string{"big", "dog", "dog"}))
	assert.True(t, ii.RemoveDocument(2))

	assert.Equal(t, before, snapshot(ii))
	assert.Equal(t, 0, ii.DocumentFrequency("dog"))
	_, ok := ii.Postings("dog")
	assert.False(t, ok, "terms without postings are dropped")
	assert.NoError(t, ii.CheckConsistency())

	assert.False(t, ii.RemoveDocument(2), "second removal reports absence")
}

func TestInvertedIndex_TermFrequenciesIsACopy(t *testing.T) {
	ii := NewInvertedIndex()
	require.NoError(t, ii.AddDocument(7, []string{"cat"}))

	tf := ii.TermFrequencies(7)
	tf["cat"] = 42
	tf["injected"] = 1

	assert.Equal(t, 1.0, ii.TermFrequencies(7)["cat"])
	assert.NoError(t, ii.CheckConsistency())

	unknown := ii.TermFrequencies(99)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)

	// Fresh value per call: mutating one does not leak into the next
	unknown["x"] = 1
	assert.Empty(t, ii.TermFrequencies(99))
}

func TestInvertedIndex_FrequencySumProperty(t *testing.T) {
	ii := NewInvertedIndex()
	docs := map[int][]string{
		1: {"a"},
		2: {"a", "b", "c"},
		3: {"x", "x", "x", "y", "z", "z", "w"},
		4: {"p", "q", "p", "q", "p", "q", "r", "s", "t", "u", "v"},
	}
	for id, words := range docs {
		require.NoError(t, ii.AddDocument(id, words))
	}

	for id := range docs {
		assert.InDelta(t, 1.0, sumFrequencies(ii.TermFrequencies(id)), 1e-9, "document %d", id)
	}

	ii.ForEachTriple(func(term string, docID int, freq float64) {
		assert.False(t, math.IsNaN(freq))
		assert.Equal(t, freq, ii.TermFrequencies(docID)[term])
	})
}

func snapshot(ii *InvertedIndex) map[string]map[int]float64 {
	out := make(map[string]map[int]float64)
	ii.ForEachTriple(func(term string, docID int, freq float64) {
		if out[term] == nil {
			out[term] = make(map[int]float64)
		}
		out[term][docID] = freq
	})
	return out
}

func TestCheckConsistency_DetectsDivergentViews(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(ii *InvertedIndex)
	}{
		{"frequency mismatch", func(ii *InvertedIndex) { ii.docToTerm[1]["cat"] = 0.9 }},
		{"missing reverse entry", func(ii *InvertedIndex) { delete(ii.docToTerm[1], "cat") }},
		{"extra reverse entry", func(ii *InvertedIndex) { ii.docToTerm[2]["ghost"] = 0.1 }},
		{"empty posting list", func(ii *InvertedIndex) { ii.termToDoc["ghost"] = Postings{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ii := NewInvertedIndex()
			require.NoError(t, ii.AddDocument(1, []string{"cat", "dog"}))
			require.NoError(t, ii.AddDocument(2, []string{"dog"}))
			require.NoError(t, ii.CheckConsistency())

			tt.corrupt(ii)
			assert.Error(t, ii.CheckConsistency())
		})
	}
}
