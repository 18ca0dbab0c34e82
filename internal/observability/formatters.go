// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/lexicon-compactor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// MergeSummary holds the figures shown after a merge run.
type MergeSummary struct {
	InputDir    string
	FilesRead   int
	RawWords    int
	UniqueWords int
	TextPath    string
	JSONPath    string
}

// PrintMergeSummary outputs a human-readable summary of a merge run.
func (p *Printer) PrintMergeSummary(summary *MergeSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Input dir:    %s\n", summary.InputDir))
	sb.WriteString(fmt.Sprintf("Files read:   %d\n", summary.FilesRead))
	sb.WriteString(fmt.Sprintf("Raw words:    %d\n", summary.RawWords))
	sb.WriteString(fmt.Sprintf("Unique words: %d\n", summary.UniqueWords))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Text output:  %s\n", summary.TextPath))
	sb.WriteString(fmt.Sprintf("JSON output:  %s", summary.JSONPath))

	p.printBox("MERGE SUMMARY", sb.String())
}

// PrintCompressionReport outputs a human-readable summary of a compaction run.
func (p *Printer) PrintCompressionReport(report *types.CompressionReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Original:  %s (%d bytes)\n", report.OriginalSizeFormatted, report.OriginalSize))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Compact:   %s (%d bytes)\n", report.CompressedSizeFormatted, report.CompressedSize))
	sb.WriteString(fmt.Sprintf("  saved:   %s (%.1f%%)\n", types.FormatSize(report.SpaceSavedJSON), report.JSONCompressionRatio))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Gzip:      %s (%d bytes)\n", report.GzipSizeFormatted, report.GzipSize))
	sb.WriteString(fmt.Sprintf("  saved:   %s (%.1f%%)", types.FormatSize(report.SpaceSavedGzip), report.GzipCompressionRatio))

	p.printBox("COMPRESSION REPORT", sb.String())
}
