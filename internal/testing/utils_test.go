package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	internalErrors "github.com/gcbaptista/go-tfidf-search/internal/errors"
	"github.com/gcbaptista/go-tfidf-search/model"
)

func TestFixturesIndexCleanly(t *testing.T) {
	pets := CreateTestServer(t, "and with")
	AddTestDocuments(t, pets, PetDocuments())
	assert.Equal(t, 5, pets.DocumentCount())

	sparrows := CreateTestServer(t, "and in at")
	AddTestDocuments(t, sparrows, SparrowDocuments())
	assert.Equal(t, 5, sparrows.DocumentCount())

	dups := CreateTestServer(t, "and with")
	AddTestDocuments(t, dups, DuplicateDocuments())
	assert.Equal(t, 9, dups.DocumentCount())
}

func TestRunSearchTests_PetDocuments(t *testing.T) {
	server := CreateTestServer(t, "and with")
	AddTestDocuments(t, server, PetDocuments())

	RunSearchTests(t, server, []SearchTestCase{
		{Name: "ranked by relevance then rating", Query: "curly dog", Status: model.StatusActual, ExpectedIDs: []int{2, 4, 5}},
		{Name: "minus term excludes", Query: "big -cat", Status: model.StatusActual, ExpectedIDs: []int{5}},
		{Name: "other status", Query: "curly dog", Status: model.StatusBanned, ExpectedIDs: []int{}},
		{Name: "stop words only", Query: "and with", Status: model.StatusActual, ExpectedIDs: []int{}},
		{Name: "double minus", Query: "--cat", ExpectError: internalErrors.ErrMalformedQuery},
	})
}
