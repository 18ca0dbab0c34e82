package emit

import (
	"fmt"
	"strings"
	"time"
)

// headerTimeLayout is the timestamp format used in the text artifact header.
const headerTimeLayout = "2006-01-02 15:04:05"

// BuildText renders the text artifact: a comment header with the generation
// time, word count, and source note, followed by one word per line.
func BuildText(words []string, sourceDir string, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("# 敏感词库合并文件\n")
	sb.WriteString(fmt.Sprintf("# 生成时间: %s\n", now.Format(headerTimeLayout)))
	sb.WriteString(fmt.Sprintf("# 总词汇数: %d\n", len(words)))
	sb.WriteString(fmt.Sprintf("# 来源: %s目录下的所有.txt文件\n", sourceDir))
	sb.WriteString("#\n")

	for _, word := range words {
		sb.WriteString(word)
		sb.WriteString("\n")
	}

	return sb.String()
}
