package compaction

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Compact strips all insignificant whitespace from the document's JSON text.
// Working on the raw text rather than the decoded struct keeps every key of
// the source present in the compact form, including keys the declared shapes
// do not know about. Compacting the same document twice yields byte-identical
// output.
func Compact(doc *Document) ([]byte, error) {
	raw, err := doc.rawJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, fmt.Errorf("failed to serialize compact JSON: %w", err)
	}
	return buf.Bytes(), nil
}
