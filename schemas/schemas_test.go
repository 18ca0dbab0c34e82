package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"merged_document.schema.json",
		"categorized_document.schema.json",
		"compression_report.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestEmbeddedSchemas_MatchFiles(t *testing.T) {
	tests := []struct {
		file     string
		embedded string
	}{
		{"merged_document.schema.json", MergedDocument},
		{"categorized_document.schema.json", CategorizedDocument},
		{"compression_report.schema.json", CompressionReport},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			data, err := os.ReadFile(tt.file)
			require.NoError(t, err)
			assert.Equal(t, string(data), tt.embedded)
		})
	}
}
