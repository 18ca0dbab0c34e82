package compaction

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// maxDiffWords caps how many missing/extra words an integrity failure reports.
const maxDiffWords = 10

// Verify re-parses the compact bytes and cross-checks them against the
// source document: the declared count must match the actual word count, the
// word sets must be identical, and all metadata must be unchanged. It is
// called on the in-memory compact form before anything is committed to disk.
func Verify(src *Document, compact []byte) error {
	reparsed, err := Parse(compact)
	if err != nil {
		return &IntegrityError{Message: fmt.Sprintf("compact form does not parse back: %v", err)}
	}

	if (src.Merged != nil) != (reparsed.Merged != nil) {
		return &IntegrityError{Message: "compact form has a different document shape than the source"}
	}

	if declared, actual := reparsed.DeclaredCount(), len(reparsed.Words()); declared != actual {
		return &IntegrityError{
			Message: "declared word count does not match the word list",
			Diff:    fmt.Sprintf("declared count: %d, actual words: %d", declared, actual),
		}
	}

	if diff := diffWordSets(src.Words(), reparsed.Words()); diff != "" {
		return &IntegrityError{Message: "word sets differ between source and compact form", Diff: diff}
	}

	diff, err := diffMetadata(src, reparsed)
	if err != nil {
		return &IntegrityError{Message: fmt.Sprintf("metadata comparison failed: %v", err)}
	}
	if diff != "" {
		return &IntegrityError{Message: "metadata changed during compaction", Diff: diff}
	}

	return nil
}

// diffWordSets compares the two word lists as sets and renders the first
// few missing and extra words. Empty string means the sets are equal.
func diffWordSets(source, compact []string) string {
	srcSet := make(map[string]struct{}, len(source))
	for _, w := range source {
		srcSet[w] = struct{}{}
	}
	compactSet := make(map[string]struct{}, len(compact))
	for _, w := range compact {
		compactSet[w] = struct{}{}
	}

	var missing, extra []string
	for w := range srcSet {
		if _, ok := compactSet[w]; !ok {
			missing = append(missing, w)
		}
	}
	for w := range compactSet {
		if _, ok := srcSet[w]; !ok {
			extra = append(extra, w)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return ""
	}

	sort.Strings(missing)
	sort.Strings(extra)

	var sb strings.Builder
	if len(missing) > 0 {
		sb.WriteString(fmt.Sprintf("missing from compact form (%d): %s\n", len(missing), sampleWords(missing)))
	}
	if len(extra) > 0 {
		sb.WriteString(fmt.Sprintf("extra in compact form (%d): %s\n", len(extra), sampleWords(extra)))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func sampleWords(words []string) string {
	if len(words) > maxDiffWords {
		return strings.Join(words[:maxDiffWords], ", ") + ", ..."
	}
	return strings.Join(words, ", ")
}

// diffMetadata compares everything except the word lists, which are checked
// as sets above. The comparison works on generic decodings of the JSON text,
// so keys outside the declared shapes are compared too and a key lost during
// compaction shows up as a diff.
func diffMetadata(src, reparsed *Document) (string, error) {
	a, err := topLevelFields(src)
	if err != nil {
		return "", err
	}
	b, err := topLevelFields(reparsed)
	if err != nil {
		return "", err
	}
	delete(a, "words")
	delete(b, "words")
	return cmp.Diff(a, b), nil
}

func topLevelFields(d *Document) (map[string]any, error) {
	raw, err := d.rawJSON()
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
