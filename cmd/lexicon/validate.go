package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/lexicon-compactor/internal/compaction"
	"github.com/jonathan/lexicon-compactor/internal/schemas"
)

var validateCommand = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate lexicon artifacts against their schemas",
	Long: `Checks each artifact against its JSON Schema and verifies the declared word count matches the word list. Gzip artifacts (.gz) are decompressed transparently; compression reports are recognized by name.

Defaults to merged_sensitive_words.json when no files are given.`,
	RunE: runValidateCmd,
}

func init() {
	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(_ *cobra.Command, args []string) error {
	files := args
	if len(files) == 0 {
		files = []string{"merged_sensitive_words.json"}
	}

	for _, file := range files {
		if err := validateArtifact(file); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		fmt.Fprintf(os.Stdout, "%s: OK\n", file)
	}
	return nil
}

// validateArtifact runs schema validation plus the count consistency check
// on one artifact file.
func validateArtifact(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %w", err)
		}
		return fmt.Errorf("failed to read file: %w", err)
	}

	if strings.HasSuffix(path, ".gz") {
		data, err = compaction.GzipDecode(data)
		if err != nil {
			return err
		}
	}

	if strings.Contains(stripGzSuffix(path), "compression_report") {
		return schemas.ValidateCompressionReport(data)
	}

	if err := schemas.ValidateDocument(data); err != nil {
		return err
	}

	doc, err := compaction.Parse(data)
	if err != nil {
		return err
	}
	if doc.Merged != nil {
		return doc.Merged.Validate()
	}
	return doc.Categorized.Validate()
}

func stripGzSuffix(path string) string {
	return strings.TrimSuffix(path, ".gz")
}
