// Package query turns raw query text into required ("plus") and excluded
// ("minus") term sets.
package query

import (
	"sort"
	"strings"

	"github.com/gcbaptista/go-tfidf-search/internal/errors"
	"github.com/gcbaptista/go-tfidf-search/internal/tokenizer"
)

const minusPrefix = "-"

// Term is a single classified query word.
type Term struct {
	Text       string
	IsExcluded bool
	IsStopWord bool
}

// Query holds deduplicated plus and minus terms, each sorted lexically.
type Query struct {
	Plus  []string
	Minus []string
}

// IsEmpty reports whether the query has neither plus nor minus terms.
func (q Query) IsEmpty() bool {
	return len(q.Plus) == 0 && len(q.Minus) == 0
}

// Parser classifies query words against a fixed stop word set.
type Parser struct {
	stopWords tokenizer.StopWordSet
}

// NewParser creates a parser. A nil set means no stop words.
func NewParser(stopWords tokenizer.StopWordSet) *Parser {
	if stopWords == nil {
		stopWords = tokenizer.StopWordSet{}
	}
	return &Parser{stopWords: stopWords}
}

// ParseTerm classifies one word. A single leading minus marks the term as
// excluded; an empty remainder, a second leading minus, a trailing minus or a
// control character makes the word malformed.
func (p *Parser) ParseTerm(word string) (Term, error) {
	text := word
	excluded := false
	if strings.HasPrefix(text, minusPrefix) {
		excluded = true
		text = text[len(minusPrefix):]
	}

	switch {
	case text == "":
		return Term{}, errors.NewMalformedQueryError(word, "no text after minus")
	case strings.HasPrefix(text, minusPrefix):
		return Term{}, errors.NewMalformedQueryError(word, "more than one leading minus")
	case strings.HasSuffix(text, minusPrefix):
		return Term{}, errors.NewMalformedQueryError(word, "trailing minus")
	case !tokenizer.IsValidWord(text):
		return Term{}, errors.NewMalformedQueryError(word, "contains control characters")
	}

	return Term{
		Text:       text,
		IsExcluded: excluded,
		IsStopWord: p.stopWords.Contains(text),
	}, nil
}

// Parse splits text into words and builds the plus/minus sets. Stop words are
// dropped silently. The first malformed word aborts parsing.
func (p *Parser) Parse(text string) (Query, error) {
	plus := make(map[string]struct{})
	minus := make(map[string]struct{})

	for _, word := range tokenizer.SplitIntoWords(text) {
		term, err := p.ParseTerm(word)
		if err != nil {
			return Query{}, err
		}
		if term.IsStopWord {
			continue
		}
		if term.IsExcluded {
			minus[term.Text] = struct{}{}
		} else {
			plus[term.Text] = struct{}{}
		}
	}

	return Query{
		Plus:  sortedKeys(plus),
		Minus: sortedKeys(minus),
	}, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
