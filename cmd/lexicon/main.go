// Package main provides the entry point for the lexicon merge and compaction CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/lexicon-compactor/internal/config"
	"github.com/jonathan/lexicon-compactor/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Sensitive lexicon merge and compaction tool",
	Long:  "lexicon merges plain-text wordlists into a deduplicated, sorted corpus, emits text and JSON artifacts, and compacts the JSON (minified plus gzip) with integrity verification.",
}

var (
	logLevel  string
	logFormat string
	logFile   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json (default text)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Optional log file; output is teed to console and file")
}

// newRunContext builds the per-run logger from the merged config and embeds
// it in a context. The returned closer flushes the log file, if any.
func newRunContext(cfg config.Config) (context.Context, io.Closer, error) {
	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return nil, nil, err
	}
	return logging.WithLogger(context.Background(), logger), closer, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
