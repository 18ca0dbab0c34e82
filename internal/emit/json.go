package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/lexicon-compactor/internal/types"
)

// defaultDescription labels the merged document artifact.
const defaultDescription = "敏感词库 - 所有词汇的简单列表"

// BuildMergedDocument constructs the JSON artifact for a merged word list.
// sourceFile records the text artifact the document was derived from.
func BuildMergedDocument(words []string, sourceFile string, now time.Time) *types.MergedDocument {
	if words == nil {
		words = []string{}
	}
	return &types.MergedDocument{
		Metadata: types.Metadata{
			SourceFile:    sourceFile,
			ConvertedTime: now.Format(types.TimeLayout),
			TotalWords:    len(words),
			Description:   defaultDescription,
		},
		Words: words,
	}
}

// MarshalIndented serializes v as human-readable JSON: two-space indent,
// literal non-ASCII characters, trailing newline.
func MarshalIndented(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSON validates the document's count invariant and atomically writes
// it as indented JSON. The destination is only replaced once the document
// has been fully serialized and validated.
func WriteJSON(path string, doc *types.MergedDocument) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("refusing to write %s: %w", path, err)
	}

	data, err := MarshalIndented(doc)
	if err != nil {
		return err
	}

	return WriteFileAtomic(path, data)
}
