package source

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// commentMarker prefixes lines that are skipped as comments.
const commentMarker = "#"

// Word is a single raw token tagged with its origin for error reporting.
type Word struct {
	Text string
	File string
	Line int
}

// Scan enumerates the .txt files under dir. With recursive set, it descends
// into subdirectories; otherwise only direct children are listed. The result
// is sorted by path so downstream processing does not depend on filesystem
// enumeration order.
func Scan(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: dir, Cause: err}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var files []string
	if recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".txt") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".txt") {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// ReadWords reads one wordlist file and returns its tokens in file order.
// Lines are trimmed; blank lines and comment lines are skipped. A line
// holding several comma-separated tokens is split into one token each.
// Invalid UTF-8 anywhere in the file fails the whole read.
func ReadWords(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path, Cause: err}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var words []Word
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		if !utf8.ValidString(raw) {
			return nil, &EncodingError{File: path, Line: lineNum}
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}

		for _, token := range splitTokens(line) {
			words = append(words, Word{Text: token, File: path, Line: lineNum})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return words, nil
}

// splitTokens splits a line on ASCII and fullwidth commas. Most lines hold a
// single word; some upstream lists pack several words on one line.
func splitTokens(line string) []string {
	if !strings.ContainsAny(line, ",，") {
		return []string{line}
	}

	var tokens []string
	for _, part := range strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == '，'
	}) {
		part = strings.TrimSpace(part)
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
