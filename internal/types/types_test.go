package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergedDocument_Validate(t *testing.T) {
	doc := &MergedDocument{
		Metadata: Metadata{TotalWords: 2},
		Words:    []string{"bar", "foo"},
	}
	assert.NoError(t, doc.Validate())
}

func TestMergedDocument_Validate_CountMismatch(t *testing.T) {
	doc := &MergedDocument{
		Metadata: Metadata{TotalWords: 3},
		Words:    []string{"bar", "foo"},
	}
	err := doc.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "total_words is 3")
}

func TestMergedDocument_Validate_Empty(t *testing.T) {
	doc := &MergedDocument{}
	assert.NoError(t, doc.Validate())
}

func TestCategorizedDocument_Validate(t *testing.T) {
	doc := &CategorizedDocument{
		TotalCount: 1,
		Categories: map[string]string{"political": "政治类"},
		Words:      []string{"foo"},
	}
	assert.NoError(t, doc.Validate())
}

func TestCategorizedDocument_Validate_CountMismatch(t *testing.T) {
	doc := &CategorizedDocument{
		TotalCount: 5,
		Words:      []string{"foo"},
	}
	err := doc.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "totalCount is 5")
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{3 * 1024 * 1024 / 2, "1.5 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatSize(tt.size))
	}
}
