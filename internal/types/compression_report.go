package types

import "fmt"

// CompressionReport records the byte sizes and ratios of the three
// compaction artifacts. Purely derived from the sizes; carries no
// independent state.
type CompressionReport struct {
	Timestamp               string  `json:"timestamp"` // RFC3339 format
	OriginalFile            string  `json:"original_file"`
	OriginalSize            int64   `json:"original_size"`
	OriginalSizeFormatted   string  `json:"original_size_formatted"`
	CompressedFile          string  `json:"compressed_file"`
	CompressedSize          int64   `json:"compressed_size"`
	CompressedSizeFormatted string  `json:"compressed_size_formatted"`
	GzipFile                string  `json:"gzip_file"`
	GzipSize                int64   `json:"gzip_size"`
	GzipSizeFormatted       string  `json:"gzip_size_formatted"`
	JSONCompressionRatio    float64 `json:"json_compression_ratio"` // percent saved vs original
	GzipCompressionRatio    float64 `json:"gzip_compression_ratio"` // percent saved vs original
	SpaceSavedJSON          int64   `json:"space_saved_json"`
	SpaceSavedGzip          int64   `json:"space_saved_gzip"`
}

// FormatSize renders a byte count in a human-readable unit (B, KB, MB).
func FormatSize(sizeBytes int64) string {
	switch {
	case sizeBytes < 1024:
		return fmt.Sprintf("%d B", sizeBytes)
	case sizeBytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(sizeBytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(sizeBytes)/(1024*1024))
	}
}
