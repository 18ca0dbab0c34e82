package emit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/lexicon-compactor/internal/types"
)

var testTime = time.Date(2025, 3, 15, 12, 30, 45, 0, time.UTC)

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, WriteFileAtomic(path, []byte("hello")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestWriteFileAtomic_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0644))

	require.NoError(t, WriteFileAtomic(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFileAtomic_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, WriteFileAtomic(path, []byte("data")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.txt", entries[0].Name())
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "out.txt")
	assert.Error(t, WriteFileAtomic(path, []byte("data")))
}

func TestBuildText(t *testing.T) {
	text := BuildText([]string{"bar", "foo"}, "Vocabulary", testTime)

	lines := strings.Split(text, "\n")
	assert.Equal(t, "# 敏感词库合并文件", lines[0])
	assert.Equal(t, "# 生成时间: 2025-03-15 12:30:45", lines[1])
	assert.Equal(t, "# 总词汇数: 2", lines[2])
	assert.Equal(t, "# 来源: Vocabulary目录下的所有.txt文件", lines[3])
	assert.Equal(t, "#", lines[4])
	assert.Equal(t, "bar", lines[5])
	assert.Equal(t, "foo", lines[6])
	assert.True(t, strings.HasSuffix(text, "\n"))
}

func TestBuildText_EmptyCorpus(t *testing.T) {
	text := BuildText(nil, "Vocabulary", testTime)

	assert.Contains(t, text, "# 总词汇数: 0")
	// Header only, no word lines.
	assert.Equal(t, 5, strings.Count(text, "\n"))
}

func TestBuildMergedDocument(t *testing.T) {
	doc := BuildMergedDocument([]string{"bar", "foo"}, "merged_sensitive_words.txt", testTime)

	assert.Equal(t, "merged_sensitive_words.txt", doc.Metadata.SourceFile)
	assert.Equal(t, "2025-03-15T12:30:45", doc.Metadata.ConvertedTime)
	assert.Equal(t, 2, doc.Metadata.TotalWords)
	assert.NoError(t, doc.Validate())
}

func TestBuildMergedDocument_EmptyWords(t *testing.T) {
	doc := BuildMergedDocument(nil, "merged.txt", testTime)

	assert.Equal(t, 0, doc.Metadata.TotalWords)
	assert.NotNil(t, doc.Words)
	assert.NoError(t, doc.Validate())
}

func TestMarshalIndented_LiteralUTF8(t *testing.T) {
	doc := BuildMergedDocument([]string{"敏感词"}, "merged.txt", testTime)

	data, err := MarshalIndented(doc)
	require.NoError(t, err)

	// Non-ASCII stays literal, not \uXXXX escapes.
	assert.Contains(t, string(data), "敏感词")
	assert.NotContains(t, string(data), "\\u")
	assert.Contains(t, string(data), "  \"metadata\"")
}

func TestMarshalIndented_StableKeyOrder(t *testing.T) {
	doc := BuildMergedDocument([]string{"foo"}, "merged.txt", testTime)

	first, err := MarshalIndented(doc)
	require.NoError(t, err)
	second, err := MarshalIndented(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// metadata precedes words, and the metadata keys follow struct order.
	s := string(first)
	assert.Less(t, strings.Index(s, "\"metadata\""), strings.Index(s, "\"words\""))
	assert.Less(t, strings.Index(s, "\"source_file\""), strings.Index(s, "\"converted_time\""))
	assert.Less(t, strings.Index(s, "\"converted_time\""), strings.Index(s, "\"total_words\""))
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merged.json")
	doc := BuildMergedDocument([]string{"bar", "baz", "foo"}, "merged.txt", testTime)

	require.NoError(t, WriteJSON(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded types.MergedDocument
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, *doc, loaded)
}

func TestWriteJSON_RejectsCountMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merged.json")
	doc := &types.MergedDocument{
		Metadata: types.Metadata{TotalWords: 99},
		Words:    []string{"foo"},
	}

	err := WriteJSON(path, doc)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "destination must not be created on validation failure")
}
