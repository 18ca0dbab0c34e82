package compaction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/jonathan/lexicon-compactor/internal/source"
	"github.com/jonathan/lexicon-compactor/internal/types"
)

// Document holds a loaded lexicon artifact in one of its two shapes.
// Exactly one of Merged or Categorized is set. raw keeps the original JSON
// text so that keys outside the declared shapes survive compaction.
type Document struct {
	Merged      *types.MergedDocument
	Categorized *types.CategorizedDocument

	raw json.RawMessage
}

// Load reads a JSON artifact from disk and detects its shape. The declared
// count is deliberately not checked here; that is the verifier's job, so a
// corrupt count is reported as an integrity failure rather than a load error.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &source.NotFoundError{Path: path, Cause: err}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, &SchemaError{Path: path, Message: "file is not valid UTF-8"}
	}

	doc, err := Parse(data)
	if err != nil {
		if schemaErr, ok := err.(*SchemaError); ok {
			schemaErr.Path = path
			return nil, schemaErr
		}
		return nil, err
	}
	return doc, nil
}

// Parse detects the document shape from raw JSON bytes.
func Parse(data []byte) (*Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &SchemaError{Message: "malformed JSON", Cause: err}
	}

	switch {
	case probe["metadata"] != nil:
		var merged types.MergedDocument
		if err := json.Unmarshal(data, &merged); err != nil {
			return nil, &SchemaError{Message: "invalid merged document", Cause: err}
		}
		return &Document{Merged: &merged, raw: data}, nil
	case probe["totalCount"] != nil || probe["lastUpdateDate"] != nil:
		var categorized types.CategorizedDocument
		if err := json.Unmarshal(data, &categorized); err != nil {
			return nil, &SchemaError{Message: "invalid categorized document", Cause: err}
		}
		return &Document{Categorized: &categorized, raw: data}, nil
	default:
		return nil, &SchemaError{Message: "unrecognized document shape: expected a metadata or totalCount field"}
	}
}

// Words returns the document's word list.
func (d *Document) Words() []string {
	if d.Merged != nil {
		return d.Merged.Words
	}
	return d.Categorized.Words
}

// DeclaredCount returns the word count the document claims to hold.
func (d *Document) DeclaredCount() int {
	if d.Merged != nil {
		return d.Merged.Metadata.TotalWords
	}
	return d.Categorized.TotalCount
}

// rawJSON returns the document's original JSON text. Documents built in
// memory rather than parsed from bytes are marshaled from their struct.
func (d *Document) rawJSON() ([]byte, error) {
	if d.raw != nil {
		return d.raw, nil
	}

	var value any = d.Categorized
	if d.Merged != nil {
		value = d.Merged
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
