package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DocumentStatus is an opaque tag attached to a document at ingest time.
// The engine never interprets it; it is only handed to caller predicates.
type DocumentStatus int

const (
	StatusActual DocumentStatus = iota
	StatusIrrelevant
	StatusBanned
	StatusRemoved
)

var statusNames = map[DocumentStatus]string{
	StatusActual:     "ACTUAL",
	StatusIrrelevant: "IRRELEVANT",
	StatusBanned:     "BANNED",
	StatusRemoved:    "REMOVED",
}

func (s DocumentStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STATUS(%d)", int(s))
}

// ParseDocumentStatus converts a status name (case-insensitive) into a DocumentStatus.
func ParseDocumentStatus(name string) (DocumentStatus, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for status, statusName := range statusNames {
		if statusName == upper {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown document status '%s'", name)
}

// MarshalJSON encodes the status by name.
func (s DocumentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts either the status name or its numeric value.
func (s *DocumentStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParseDocumentStatus(name)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var value int
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("document status must be a name or a number: %w", err)
	}
	if _, ok := statusNames[DocumentStatus(value)]; !ok {
		return fmt.Errorf("unknown document status %d", value)
	}
	*s = DocumentStatus(value)
	return nil
}

// Document is a single ranked search hit. It is produced only as a projection
// of the index state at search time and is never stored.
type Document struct {
	ID        int     `json:"document_id"`
	Relevance float64 `json:"relevance"`
	Rating    int     `json:"rating"`
}

func (d Document) String() string {
	return fmt.Sprintf("{ document_id = %d, relevance = %g, rating = %d }", d.ID, d.Relevance, d.Rating)
}

// DocumentPredicate decides whether a ranked candidate is kept in the result list.
type DocumentPredicate func(documentID int, status DocumentStatus, rating int) bool

// StatusPredicate keeps only documents with the given status.
func StatusPredicate(status DocumentStatus) DocumentPredicate {
	return func(_ int, documentStatus DocumentStatus, _ int) bool {
		return documentStatus == status
	}
}

// DocumentInput carries everything needed to ingest one document.
type DocumentInput struct {
	ID      int            `json:"document_id"`
	Text    string         `json:"text"`
	Status  DocumentStatus `json:"status"`
	Ratings []int          `json:"ratings"`
}

// MatchResult lists the query plus-terms found in one document.
// Words is empty whenever any minus-term of the query hits the document.
type MatchResult struct {
	DocumentID int            `json:"document_id"`
	Words      []string       `json:"words"`
	Status     DocumentStatus `json:"status"`
}

func (m MatchResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{ document_id = %d, status = %s, words =", m.DocumentID, m.Status)
	for _, word := range m.Words {
		sb.WriteByte(' ')
		sb.WriteString(word)
	}
	sb.WriteString("}")
	return sb.String()
}
