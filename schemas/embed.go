// Package schemas holds the JSON Schema documents for the lexicon artifacts
// and embeds them so validation does not depend on the working directory.
package schemas

import _ "embed"

// MergedDocument is the schema for the metadata/words artifact shape.
//
//go:embed merged_document.schema.json
var MergedDocument string

// CategorizedDocument is the schema for the categorized artifact shape.
//
//go:embed categorized_document.schema.json
var CategorizedDocument string

// CompressionReport is the schema for the compression report.
//
//go:embed compression_report.schema.json
var CompressionReport string
