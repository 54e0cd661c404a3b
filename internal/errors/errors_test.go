package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidConfigurationError(t *testing.T) {
	err := NewInvalidConfigurationError("a\x01b", "contains control characters")

	expectedMsg := `invalid stop word "a\x01b": contains control characters`
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Error("Expected error to match ErrInvalidConfiguration sentinel")
	}
	if errors.Is(err, ErrMalformedQuery) {
		t.Error("Error should not match ErrMalformedQuery")
	}
}

func TestInvalidDocumentError(t *testing.T) {
	err := NewInvalidDocumentError(-1, "document id is negative")

	expectedMsg := "document -1 rejected: document id is negative"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidDocument) {
		t.Error("Expected error to match ErrInvalidDocument sentinel")
	}
}

func TestMalformedQueryError(t *testing.T) {
	err := NewMalformedQueryError("--cat", "more than one leading minus")

	expectedMsg := `malformed query term "--cat": more than one leading minus`
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrMalformedQuery) {
		t.Error("Expected error to match ErrMalformedQuery sentinel")
	}
	if errors.Is(err, ErrInvalidDocument) {
		t.Error("Error should not match ErrInvalidDocument")
	}
}

func TestUnknownDocumentError(t *testing.T) {
	err := NewUnknownDocumentError(42)

	expectedMsg := "document with ID 42 not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Wrapped errors still match
	wrapped := fmt.Errorf("remove failed: %w", err)
	if !errors.Is(wrapped, ErrUnknownDocument) {
		t.Error("Expected wrapped error to match ErrUnknownDocument sentinel")
	}

	var unknown *UnknownDocumentError
	if !errors.As(wrapped, &unknown) || unknown.DocumentID != 42 {
		t.Error("Expected errors.As to recover the document id")
	}
}
