package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/lexicon-compactor/internal/config"
)

func TestCompressPaths_Defaults(t *testing.T) {
	cfg := config.Config{OutputPrefix: "merged_sensitive_words"}

	input, report := compressPaths(cfg, nil)
	assert.Equal(t, "merged_sensitive_words.json", input)
	assert.Equal(t, "compression_report.json", report)
}

func TestCompressPaths_JoinsOutputDir(t *testing.T) {
	cfg := config.Config{
		OutputPrefix: "merged_sensitive_words",
		OutputDir:    "out",
	}

	input, report := compressPaths(cfg, nil)
	assert.Equal(t, filepath.Join("out", "merged_sensitive_words.json"), input)
	assert.Equal(t, filepath.Join("out", "compression_report.json"), report)
}

func TestCompressPaths_ExplicitArgAndReport(t *testing.T) {
	cfg := config.Config{
		OutputPrefix: "merged_sensitive_words",
		OutputDir:    "out",
		ReportFile:   "custom_report.json",
	}

	input, report := compressPaths(cfg, []string{"other.json"})
	assert.Equal(t, "other.json", input)
	assert.Equal(t, "custom_report.json", report)
}
