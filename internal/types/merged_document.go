// Package types provides type definitions for the lexicon artifacts produced and consumed by the tool.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// TimeLayout is the timestamp format used in merged document metadata.
const TimeLayout = "2006-01-02T15:04:05"

// Metadata describes the provenance of a merged document.
type Metadata struct {
	SourceFile    string `json:"source_file"`
	ConvertedTime string `json:"converted_time"` // TimeLayout format
	TotalWords    int    `json:"total_words"`
	Description   string `json:"description"`
}

// MergedDocument is the primary JSON artifact emitted by the merge step:
// a metadata block plus the sorted, deduplicated word list.
type MergedDocument struct {
	Metadata Metadata `json:"metadata"`
	Words    []string `json:"words"`
}

// Validate checks the count invariant: the declared total must equal the
// actual number of words.
func (d *MergedDocument) Validate() error {
	if d.Metadata.TotalWords != len(d.Words) {
		return fmt.Errorf("total_words is %d but words has %d entries", d.Metadata.TotalWords, len(d.Words))
	}
	return nil
}
