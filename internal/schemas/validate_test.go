package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMerged = `{
	"metadata": {
		"source_file": "merged_sensitive_words.txt",
		"converted_time": "2025-03-15T12:30:45",
		"total_words": 2,
		"description": "敏感词库 - 所有词汇的简单列表"
	},
	"words": ["bar", "foo"]
}`

const validCategorized = `{
	"lastUpdateDate": "2025/03/15",
	"totalCount": 2,
	"description": "合并后的敏感词库",
	"categories": {"political": "政治类", "gambling": "赌博类"},
	"words": ["bar", "foo"]
}`

func TestValidateMergedDocument_Valid(t *testing.T) {
	assert.NoError(t, ValidateMergedDocument([]byte(validMerged)))
}

func TestValidateMergedDocument_MissingMetadataField(t *testing.T) {
	content := `{
		"metadata": {
			"source_file": "merged.txt",
			"total_words": 0,
			"description": ""
		},
		"words": []
	}`

	err := ValidateMergedDocument([]byte(content))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "converted_time")
}

func TestValidateMergedDocument_WrongWordType(t *testing.T) {
	content := `{
		"metadata": {
			"source_file": "merged.txt",
			"converted_time": "2025-03-15T12:30:45",
			"total_words": 1,
			"description": ""
		},
		"words": [42]
	}`

	err := ValidateMergedDocument([]byte(content))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateCategorizedDocument_Valid(t *testing.T) {
	assert.NoError(t, ValidateCategorizedDocument([]byte(validCategorized)))
}

func TestValidateCategorizedDocument_BadDateFormat(t *testing.T) {
	content := `{"lastUpdateDate": "March 15", "totalCount": 0, "words": []}`

	err := ValidateCategorizedDocument([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lastUpdateDate")
}

func TestValidateCategorizedDocument_NonIntegerCount(t *testing.T) {
	content := `{"lastUpdateDate": "2025/03/15", "totalCount": "two", "words": []}`

	err := ValidateCategorizedDocument([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "totalCount")
}

func TestValidateDocument_DetectsMergedShape(t *testing.T) {
	assert.NoError(t, ValidateDocument([]byte(validMerged)))
}

func TestValidateDocument_DetectsCategorizedShape(t *testing.T) {
	assert.NoError(t, ValidateDocument([]byte(validCategorized)))
}

func TestValidateDocument_UnknownShape(t *testing.T) {
	err := ValidateDocument([]byte(`{"entries": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither the merged nor the categorized shape")
}

func TestValidateDocument_MalformedJSON(t *testing.T) {
	err := ValidateDocument([]byte(`{ not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed JSON")
}

func TestValidateCompressionReport_Valid(t *testing.T) {
	content := `{
		"timestamp": "2025-03-15T12:00:00Z",
		"original_file": "merged_sensitive_words.json",
		"original_size": 1000,
		"original_size_formatted": "1000 B",
		"compressed_file": "merged_sensitive_words_compressed.json",
		"compressed_size": 600,
		"compressed_size_formatted": "600 B",
		"gzip_file": "merged_sensitive_words_compressed.json.gz",
		"gzip_size": 200,
		"gzip_size_formatted": "200 B",
		"json_compression_ratio": 40.0,
		"gzip_compression_ratio": 80.0,
		"space_saved_json": 400,
		"space_saved_gzip": 800
	}`

	assert.NoError(t, ValidateCompressionReport([]byte(content)))
}

func TestValidateCompressionReport_NegativeSize(t *testing.T) {
	content := `{
		"timestamp": "2025-03-15T12:00:00Z",
		"original_file": "a.json",
		"original_size": -1,
		"compressed_file": "b.json",
		"compressed_size": 0,
		"gzip_file": "c.gz",
		"gzip_size": 0,
		"json_compression_ratio": 0,
		"gzip_compression_ratio": 0,
		"space_saved_json": 0,
		"space_saved_gzip": 0
	}`

	err := ValidateCompressionReport([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "original_size")
}
