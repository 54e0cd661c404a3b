// Package config provides configuration structures for the search server.
// It defines the index settings (stop words) and the process configuration
// loaded from YAML with environment overrides.
package config

import (
	"github.com/gcbaptista/go-tfidf-search/internal/errors"
	"github.com/gcbaptista/go-tfidf-search/internal/tokenizer"
)

// IndexSettings contains the construction-time options of an index.
// Stop words can be given as a pre-split list, as space-delimited text, or both;
// the two sources are merged.
type IndexSettings struct {
	StopWords     []string `json:"stop_words" yaml:"stopWords"`
	StopWordsText string   `json:"stop_words_text" yaml:"stopWordsText"`
}

// NewIndexSettingsFromText builds settings from space-delimited stop words.
func NewIndexSettingsFromText(stopWordsText string) IndexSettings {
	return IndexSettings{StopWordsText: stopWordsText}
}

// AllStopWords returns the merged stop word list (list entries first, then text entries).
func (settings IndexSettings) AllStopWords() []string {
	words := make([]string, 0, len(settings.StopWords))
	words = append(words, settings.StopWords...)
	words = append(words, tokenizer.SplitIntoWords(settings.StopWordsText)...)
	return words
}

// Validate checks every stop word against the control-character rule.
// The first offending word is reported as an InvalidConfigurationError.
func (settings IndexSettings) Validate() error {
	for _, word := range settings.AllStopWords() {
		if !tokenizer.IsValidWord(word) {
			return errors.NewInvalidConfigurationError(word, "stop word contains control characters")
		}
	}
	return nil
}

// StopWordSet validates the settings and returns the stop word set.
func (settings IndexSettings) StopWordSet() (tokenizer.StopWordSet, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return tokenizer.NewStopWordSet(settings.AllStopWords()), nil
}
