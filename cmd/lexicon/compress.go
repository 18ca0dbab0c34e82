package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/lexicon-compactor/internal/compaction"
	"github.com/jonathan/lexicon-compactor/internal/config"
	"github.com/jonathan/lexicon-compactor/internal/logging"
	"github.com/jonathan/lexicon-compactor/internal/observability"
)

var compressCommand = &cobra.Command{
	Use:   "compress [input_file]",
	Short: "Compact a merged JSON artifact and produce a gzip tier",
	Long: `Reserializes the JSON artifact with no whitespace, verifies the compact form against the source before committing it, gzips the compact bytes, and writes a compression report.

Defaults to merged_sensitive_words.json when no input file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompressCmd,
}

var (
	compressConfigPath string
	compressReportFile string
	compressVerbose    bool
)

func init() {
	compressCommand.Flags().StringVar(&compressConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	compressCommand.Flags().StringVar(&compressReportFile, "report", "", "Path for the compression report (default compression_report.json)")
	compressCommand.Flags().BoolVarP(&compressVerbose, "verbose", "v", false, "Print the compression report to stdout")

	rootCmd.AddCommand(compressCommand)
}

func compressConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if compressConfigPath != "" {
		loaded, err := config.LoadConfig(compressConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("report") {
		cfg.ReportFile = compressReportFile
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = compressVerbose
	}
	applyLoggingFlags(cmd, &cfg)

	cfg = cfg.MergeWithDefaults(config.Config{
		OutputPrefix: "merged_sensitive_words",
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// compressPaths resolves the input artifact and report destination. Defaults
// live in cfg.OutputDir so that compress operates on the same directory the
// merge command wrote to under the same config.
func compressPaths(cfg config.Config, args []string) (inputPath, reportPath string) {
	inputPath = filepath.Join(cfg.OutputDir, cfg.OutputPrefix+".json")
	if len(args) == 1 {
		inputPath = args[0]
	}
	reportPath = cfg.ReportFile
	if reportPath == "" {
		reportPath = filepath.Join(cfg.OutputDir, "compression_report.json")
	}
	return inputPath, reportPath
}

func runCompressCmd(cmd *cobra.Command, args []string) error {
	cfg, err := compressConfig(cmd)
	if err != nil {
		return err
	}

	inputPath, reportPath := compressPaths(cfg, args)

	ctx, closer, err := newRunContext(cfg)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	result, err := compaction.Run(ctx, inputPath, reportPath)
	if err != nil {
		logging.FromContext(ctx).Error("compaction failed", "file", inputPath, "error", err)
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintCompressionReport(result.Report)
	}

	return nil
}
