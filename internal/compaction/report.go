package compaction

import (
	"time"

	"github.com/jonathan/lexicon-compactor/internal/emit"
	"github.com/jonathan/lexicon-compactor/internal/types"
)

// NewReport derives a CompressionReport from the three artifact sizes.
// Ratios are percent saved relative to the original size.
func NewReport(originalFile, compressedFile, gzipFile string, originalSize, compressedSize, gzipSize int64, now time.Time) *types.CompressionReport {
	var jsonRatio, gzipRatio float64
	if originalSize > 0 {
		jsonRatio = (1 - float64(compressedSize)/float64(originalSize)) * 100
		gzipRatio = (1 - float64(gzipSize)/float64(originalSize)) * 100
	}

	return &types.CompressionReport{
		Timestamp:               now.Format(time.RFC3339),
		OriginalFile:            originalFile,
		OriginalSize:            originalSize,
		OriginalSizeFormatted:   types.FormatSize(originalSize),
		CompressedFile:          compressedFile,
		CompressedSize:          compressedSize,
		CompressedSizeFormatted: types.FormatSize(compressedSize),
		GzipFile:                gzipFile,
		GzipSize:                gzipSize,
		GzipSizeFormatted:       types.FormatSize(gzipSize),
		JSONCompressionRatio:    jsonRatio,
		GzipCompressionRatio:    gzipRatio,
		SpaceSavedJSON:          originalSize - compressedSize,
		SpaceSavedGzip:          originalSize - gzipSize,
	}
}

// WriteReport atomically writes the report as indented JSON.
func WriteReport(path string, report *types.CompressionReport) error {
	data, err := emit.MarshalIndented(report)
	if err != nil {
		return err
	}
	return emit.WriteFileAtomic(path, data)
}
