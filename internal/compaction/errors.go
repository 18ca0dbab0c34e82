// Package compaction reserializes lexicon documents in compact form, with
// gzip encoding and pre-commit integrity verification.
package compaction

import "fmt"

// SchemaError represents malformed JSON or an unrecognized document shape on load
type SchemaError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("schema error: %s: %s", e.Path, e.Message)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// IntegrityError represents a mismatch between the source document and its
// compact form, detected before any output is committed
type IntegrityError struct {
	Message string
	Diff    string
}

func (e *IntegrityError) Error() string {
	if e.Diff != "" {
		return fmt.Sprintf("integrity error: %s\n%s", e.Message, e.Diff)
	}
	return fmt.Sprintf("integrity error: %s", e.Message)
}
