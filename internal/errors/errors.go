package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidConfiguration is returned when a stop word fails validation at construction
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidDocument is returned when a document cannot be ingested
	ErrInvalidDocument = errors.New("invalid document")

	// ErrMalformedQuery is returned when a query term violates the query syntax
	ErrMalformedQuery = errors.New("malformed query")

	// ErrUnknownDocument is returned when an operation addresses a document that is not indexed
	ErrUnknownDocument = errors.New("unknown document")
)

// InvalidConfigurationError reports the stop word that was rejected
type InvalidConfigurationError struct {
	Word   string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid stop word %q: %s", e.Word, e.Reason)
}

func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// NewInvalidConfigurationError creates a new InvalidConfigurationError
func NewInvalidConfigurationError(word, reason string) *InvalidConfigurationError {
	return &InvalidConfigurationError{Word: word, Reason: reason}
}

// InvalidDocumentError reports why a document was refused by the index
type InvalidDocumentError struct {
	DocumentID int
	Reason     string
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("document %d rejected: %s", e.DocumentID, e.Reason)
}

func (e *InvalidDocumentError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// NewInvalidDocumentError creates a new InvalidDocumentError
func NewInvalidDocumentError(documentID int, reason string) *InvalidDocumentError {
	return &InvalidDocumentError{DocumentID: documentID, Reason: reason}
}

// MalformedQueryError reports the offending query term
type MalformedQueryError struct {
	Term   string
	Reason string
}

func (e *MalformedQueryError) Error() string {
	return fmt.Sprintf("malformed query term %q: %s", e.Term, e.Reason)
}

func (e *MalformedQueryError) Is(target error) bool {
	return target == ErrMalformedQuery
}

// NewMalformedQueryError creates a new MalformedQueryError
func NewMalformedQueryError(term, reason string) *MalformedQueryError {
	return &MalformedQueryError{Term: term, Reason: reason}
}

// UnknownDocumentError represents an operation on a document id that is not live
type UnknownDocumentError struct {
	DocumentID int
}

func (e *UnknownDocumentError) Error() string {
	return fmt.Sprintf("document with ID %d not found", e.DocumentID)
}

func (e *UnknownDocumentError) Is(target error) bool {
	return target == ErrUnknownDocument
}

// NewUnknownDocumentError creates a new UnknownDocumentError
func NewUnknownDocumentError(documentID int) *UnknownDocumentError {
	return &UnknownDocumentError{DocumentID: documentID}
}
