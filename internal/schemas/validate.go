// Package schemas validates lexicon artifacts against their JSON Schemas.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	rootschemas "github.com/jonathan/lexicon-compactor/schemas"
)

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateMergedDocument validates JSON content against the merged document schema.
func ValidateMergedDocument(jsonContent []byte) error {
	return validateAgainst(rootschemas.MergedDocument, jsonContent)
}

// ValidateCategorizedDocument validates JSON content against the categorized document schema.
func ValidateCategorizedDocument(jsonContent []byte) error {
	return validateAgainst(rootschemas.CategorizedDocument, jsonContent)
}

// ValidateCompressionReport validates JSON content against the report schema.
func ValidateCompressionReport(jsonContent []byte) error {
	return validateAgainst(rootschemas.CompressionReport, jsonContent)
}

// ValidateDocument picks the schema matching the document shape and
// validates against it. Content that is neither shape fails with a
// root-level error.
func ValidateDocument(jsonContent []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(jsonContent, &probe); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}

	switch {
	case probe["metadata"] != nil:
		return ValidateMergedDocument(jsonContent)
	case probe["totalCount"] != nil || probe["lastUpdateDate"] != nil:
		return ValidateCategorizedDocument(jsonContent)
	default:
		return &ValidationError{Errors: []FieldError{{
			Field:   "(root)",
			Message: "document matches neither the merged nor the categorized shape",
		}}}
	}
}

func validateAgainst(schemaContent string, jsonContent []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
