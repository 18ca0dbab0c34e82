// Package merge orchestrates the merge pipeline: read source wordlists,
// deduplicate and sort, emit the text and JSON artifacts.
package merge

import (
	"context"
	"path/filepath"
	"time"

	"github.com/jonathan/lexicon-compactor/internal/corpus"
	"github.com/jonathan/lexicon-compactor/internal/emit"
	"github.com/jonathan/lexicon-compactor/internal/logging"
	"github.com/jonathan/lexicon-compactor/internal/schemas"
	"github.com/jonathan/lexicon-compactor/internal/source"
	"github.com/jonathan/lexicon-compactor/internal/types"
)

// Options configures one merge run.
type Options struct {
	InputDir     string // directory of source .txt wordlists
	OutputPrefix string // artifact base name, e.g. merged_sensitive_words
	OutputDir    string // directory for artifacts; empty means current dir
	Recursive    bool   // descend into subdirectories of InputDir
}

// Result summarizes a completed merge run.
type Result struct {
	TextPath    string
	JSONPath    string
	FilesRead   int
	RawWords    int
	UniqueWords int
	Document    *types.MergedDocument
}

// Run executes the merge pipeline. Artifacts are written atomically and the
// JSON document is schema-validated before it replaces any prior output.
// An input directory with no usable words still produces artifacts with a
// zero count.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := source.Scan(opts.InputDir, opts.Recursive)
	if err != nil {
		return nil, err
	}
	logger.Info("scanned vocabulary directory", "dir", opts.InputDir, "files", len(files), "recursive", opts.Recursive)

	c := corpus.New()
	for _, file := range files {
		words, err := source.ReadWords(file)
		if err != nil {
			return nil, err
		}
		c.Add(words)
		logger.Info("read wordlist", "file", file, "words", len(words))
	}

	sorted := c.Words()
	logger.Info("deduplicated corpus", "raw_words", c.RawCount(), "unique_words", len(sorted))

	textPath := filepath.Join(opts.OutputDir, opts.OutputPrefix+".txt")
	jsonPath := filepath.Join(opts.OutputDir, opts.OutputPrefix+".json")
	now := time.Now()

	// Both artifacts are built and validated before either rename, so a
	// failure in the JSON stage cannot leave a fresh text file next to a
	// stale document.
	textData := []byte(emit.BuildText(sorted, opts.InputDir, now))
	doc := emit.BuildMergedDocument(sorted, filepath.Base(textPath), now)
	jsonData, err := emit.MarshalIndented(doc)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateMergedDocument(jsonData); err != nil {
		return nil, err
	}

	if err := emit.WriteFileAtomic(jsonPath, jsonData); err != nil {
		return nil, err
	}
	logger.Info("wrote JSON artifact", "file", jsonPath, "total_words", doc.Metadata.TotalWords)

	if err := emit.WriteFileAtomic(textPath, textData); err != nil {
		return nil, err
	}
	logger.Info("wrote text artifact", "file", textPath)

	return &Result{
		TextPath:    textPath,
		JSONPath:    jsonPath,
		FilesRead:   len(files),
		RawWords:    c.RawCount(),
		UniqueWords: len(sorted),
		Document:    doc,
	}, nil
}
