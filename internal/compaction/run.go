package compaction

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonathan/lexicon-compactor/internal/emit"
	"github.com/jonathan/lexicon-compactor/internal/logging"
	"github.com/jonathan/lexicon-compactor/internal/source"
	"github.com/jonathan/lexicon-compactor/internal/types"
)

// Result holds the artifact paths and report of one compaction run.
type Result struct {
	CompressedPath string
	GzipPath       string
	ReportPath     string
	Report         *types.CompressionReport
}

// OutputPaths derives the compact and gzip artifact names from the input
// file: <base>_compressed.json and <base>_compressed.json.gz.
func OutputPaths(inputPath string) (compressedPath, gzipPath string) {
	base := strings.TrimSuffix(inputPath, ".json")
	compressedPath = base + "_compressed.json"
	gzipPath = compressedPath + ".gz"
	return compressedPath, gzipPath
}

// Run executes the compaction pipeline for one input artifact. The stages
// are load, serialize, verify, commit: verification happens on the
// in-memory compact form, and no destination file is touched until it
// passes. On failure any previously committed outputs remain unchanged.
func Run(ctx context.Context, inputPath, reportPath string) (*Result, error) {
	logger := logging.FromContext(ctx)

	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &source.NotFoundError{Path: inputPath, Cause: err}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", inputPath, err)
	}
	originalSize := info.Size()

	logger.Info("loading document", "file", inputPath, "size", originalSize)
	doc, err := Load(inputPath)
	if err != nil {
		return nil, err
	}

	logger.Info("serializing compact form", "words", len(doc.Words()))
	compact, err := Compact(doc)
	if err != nil {
		return nil, err
	}

	logger.Info("verifying compact form")
	if err := Verify(doc, compact); err != nil {
		return nil, err
	}

	gzipped, err := GzipEncode(compact)
	if err != nil {
		return nil, err
	}

	compressedPath, gzipPath := OutputPaths(inputPath)
	logger.Info("committing artifacts", "compressed", compressedPath, "gzip", gzipPath)
	if err := emit.WriteFileAtomic(compressedPath, compact); err != nil {
		return nil, err
	}
	if err := emit.WriteFileAtomic(gzipPath, gzipped); err != nil {
		return nil, err
	}

	report := NewReport(inputPath, compressedPath, gzipPath,
		originalSize, int64(len(compact)), int64(len(gzipped)), time.Now())
	if err := WriteReport(reportPath, report); err != nil {
		return nil, err
	}
	logger.Info("compaction complete",
		"json_ratio", fmt.Sprintf("%.1f%%", report.JSONCompressionRatio),
		"gzip_ratio", fmt.Sprintf("%.1f%%", report.GzipCompressionRatio))

	return &Result{
		CompressedPath: compressedPath,
		GzipPath:       gzipPath,
		ReportPath:     reportPath,
		Report:         report,
	}, nil
}
