package tokenizer

import (
	"strings"
)

// wordSeparator is the only character that delimits words.
// Other whitespace stays inside a word and is rejected by IsValidWord.
const wordSeparator = ' '

// SplitIntoWords splits text on spaces. Empty fragments produced by leading,
// trailing or repeated spaces are discarded.
func SplitIntoWords(text string) []string {
	split := strings.FieldsFunc(text, func(r rune) bool {
		return r == wordSeparator
	})

	words := make([]string, 0, len(split)) // Initialize as empty slice, not nil
	words = append(words, split...)
	return words
}

// IsValidWord reports whether word is free of control characters
// (every byte in the range 0x00-0x20 is forbidden).
func IsValidWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] <= ' ' {
			return false
		}
	}
	return true
}

// StopWordSet is an immutable set of words ignored by indexing and query parsing.
type StopWordSet map[string]struct{}

// NewStopWordSet builds a set from words, skipping empty strings.
func NewStopWordSet(words []string) StopWordSet {
	set := make(StopWordSet, len(words))
	for _, word := range words {
		if word != "" {
			set[word] = struct{}{}
		}
	}
	return set
}

// Contains reports whether word is a stop word.
func (s StopWordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// FilterStopWords returns the words of text that are not stop words, in order.
func FilterStopWords(text string, stopWords StopWordSet) []string {
	words := SplitIntoWords(text)
	filtered := words[:0]
	for _, word := range words {
		if !stopWords.Contains(word) {
			filtered = append(filtered, word)
		}
	}
	return filtered
}
