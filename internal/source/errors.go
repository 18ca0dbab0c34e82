// Package source reads raw wordlist files from a vocabulary directory.
package source

import "fmt"

// NotFoundError represents a missing input directory or file
type NotFoundError struct {
	Path  string
	Cause error
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("not found: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// EncodingError represents undecodable bytes in an input file
type EncodingError struct {
	File string
	Line int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: %s:%d: invalid UTF-8", e.File, e.Line)
}
