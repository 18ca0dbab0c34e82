package main

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/lexicon-compactor/internal/compaction"
	"github.com/jonathan/lexicon-compactor/internal/logging"
	"github.com/jonathan/lexicon-compactor/internal/merge"
	"github.com/jonathan/lexicon-compactor/internal/observability"
)

var pipelineCommand = &cobra.Command{
	Use:   "pipeline",
	Short: "Run merge, compress, and validate in one invocation",
	Long: `Runs the full flow end-to-end: merge the wordlists, compact and gzip the JSON artifact, and validate every produced file. A run ID is attached to all log lines for traceability.

Accepts the same flags as the merge command plus --report.`,
	RunE: runPipelineCmd,
}

var pipelineReportFile string

func init() {
	pipelineCommand.Flags().StringVar(&mergeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	pipelineCommand.Flags().StringVarP(&mergeInputDir, "input-dir", "i", "", "Directory of source wordlist files (default Vocabulary)")
	pipelineCommand.Flags().StringVarP(&mergePrefix, "output-prefix", "o", "", "Base name for the merged artifacts (default merged_sensitive_words)")
	pipelineCommand.Flags().StringVar(&mergeOutputDir, "output-dir", "", "Directory for the merged artifacts (default current directory)")
	pipelineCommand.Flags().BoolVarP(&mergeRecursive, "recursive", "r", false, "Scan subdirectories of the input directory")
	pipelineCommand.Flags().BoolVarP(&mergeVerbose, "verbose", "v", false, "Print run summaries")
	pipelineCommand.Flags().StringVar(&pipelineReportFile, "report", "", "Path for the compression report (default compression_report.json)")

	rootCmd.AddCommand(pipelineCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("report") {
		cfg.ReportFile = pipelineReportFile
	}
	if cfg.ReportFile == "" {
		cfg.ReportFile = filepath.Join(cfg.OutputDir, "compression_report.json")
	}

	ctx, closer, err := newRunContext(cfg)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	runID := uuid.New().String()
	logger := logging.FromContext(ctx).With("run_id", runID)
	ctx = logging.WithLogger(ctx, logger)

	logger.Info("pipeline started", "input_dir", cfg.InputDir)

	mergeResult, err := merge.Run(ctx, merge.Options{
		InputDir:     cfg.InputDir,
		OutputPrefix: cfg.OutputPrefix,
		OutputDir:    cfg.OutputDir,
		Recursive:    cfg.Recursive,
	})
	if err != nil {
		logger.Error("pipeline failed at merge stage", "error", err)
		return err
	}

	compactResult, err := compaction.Run(ctx, mergeResult.JSONPath, cfg.ReportFile)
	if err != nil {
		logger.Error("pipeline failed at compaction stage", "error", err)
		return err
	}

	artifacts := []string{
		mergeResult.JSONPath,
		compactResult.CompressedPath,
		compactResult.GzipPath,
		compactResult.ReportPath,
	}
	for _, artifact := range artifacts {
		if err := validateArtifact(artifact); err != nil {
			logger.Error("pipeline failed at validation stage", "file", artifact, "error", err)
			return err
		}
	}
	logger.Info("pipeline complete", "validated", len(artifacts))

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMergeSummary(&observability.MergeSummary{
			InputDir:    cfg.InputDir,
			FilesRead:   mergeResult.FilesRead,
			RawWords:    mergeResult.RawWords,
			UniqueWords: mergeResult.UniqueWords,
			TextPath:    mergeResult.TextPath,
			JSONPath:    mergeResult.JSONPath,
		})
		printer.PrintCompressionReport(compactResult.Report)
	}

	return nil
}
