package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/lexicon-compactor/internal/config"
	"github.com/jonathan/lexicon-compactor/internal/logging"
	"github.com/jonathan/lexicon-compactor/internal/merge"
	"github.com/jonathan/lexicon-compactor/internal/observability"
)

var mergeCommand = &cobra.Command{
	Use:   "merge",
	Short: "Merge wordlist files into deduplicated text and JSON artifacts",
	Long: `Reads every .txt wordlist in the input directory, skips comments and blank lines, deduplicates and sorts the words, and writes <prefix>.txt and <prefix>.json atomically.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runMergeCmd,
}

var (
	mergeConfigPath string
	mergeInputDir   string
	mergePrefix     string
	mergeOutputDir  string
	mergeRecursive  bool
	mergeVerbose    bool
)

func init() {
	mergeCommand.Flags().StringVar(&mergeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	mergeCommand.Flags().StringVarP(&mergeInputDir, "input-dir", "i", "", "Directory of source wordlist files (default Vocabulary)")
	mergeCommand.Flags().StringVarP(&mergePrefix, "output-prefix", "o", "", "Base name for the merged artifacts (default merged_sensitive_words)")
	mergeCommand.Flags().StringVar(&mergeOutputDir, "output-dir", "", "Directory for the merged artifacts (default current directory)")
	mergeCommand.Flags().BoolVarP(&mergeRecursive, "recursive", "r", false, "Scan subdirectories of the input directory")
	mergeCommand.Flags().BoolVarP(&mergeVerbose, "verbose", "v", false, "Print a merge summary after the run")

	rootCmd.AddCommand(mergeCommand)
}

// mergeConfig assembles the effective config for the merge command:
// config file values, overridden by explicitly set flags, backfilled with
// defaults.
func mergeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if mergeConfigPath != "" {
		loaded, err := config.LoadConfig(mergeConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = mergeInputDir
	}
	if cmd.Flags().Changed("output-prefix") {
		cfg.OutputPrefix = mergePrefix
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = mergeOutputDir
	}
	if cmd.Flags().Changed("recursive") {
		cfg.Recursive = mergeRecursive
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = mergeVerbose
	}
	applyLoggingFlags(cmd, &cfg)

	cfg = cfg.MergeWithDefaults(config.Config{
		InputDir:     "Vocabulary",
		OutputPrefix: "merged_sensitive_words",
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyLoggingFlags copies the root logging flags into the config when they
// were explicitly set.
func applyLoggingFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = logFile
	}
}

func runMergeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(cmd)
	if err != nil {
		return err
	}

	ctx, closer, err := newRunContext(cfg)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	result, err := merge.Run(ctx, merge.Options{
		InputDir:     cfg.InputDir,
		OutputPrefix: cfg.OutputPrefix,
		OutputDir:    cfg.OutputDir,
		Recursive:    cfg.Recursive,
	})
	if err != nil {
		logging.FromContext(ctx).Error("merge failed", "error", err)
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMergeSummary(&observability.MergeSummary{
			InputDir:    cfg.InputDir,
			FilesRead:   result.FilesRead,
			RawWords:    result.RawWords,
			UniqueWords: result.UniqueWords,
			TextPath:    result.TextPath,
			JSONPath:    result.JSONPath,
		})
	}

	return nil
}
