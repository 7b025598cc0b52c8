package skill

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const headerDelimiter = "---"

// ParseHeader extracts the key-value frontmatter block from manifest text.
// The block starts when the first non-empty line is exactly "---" and ends
// at the next "---" line or end of input. Each line is split on the first
// colon; lines without one are skipped. Values lose one layer of matching
// single or double quotes.
//
// Malformed input degrades to a partial or empty map. A manifest without a
// header block and one with an empty block both yield an empty map; this
// function never fails.
func ParseHeader(text string) map[string]string {
	header := make(map[string]string)
	lines := SplitLines(text)

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start >= len(lines) || strings.TrimSpace(lines[start]) != headerDelimiter {
		return header
	}

	for _, line := range lines[start+1:] {
		if strings.TrimSpace(line) == headerDelimiter {
			break
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		header[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}

	return header
}

// DecodeMetadata parses the frontmatter into typed Metadata and returns the
// remaining body. Content without a closed frontmatter block yields zero
// Metadata and the full text.
func DecodeMetadata(content []byte) (Metadata, string, error) {
	var meta Metadata
	text := string(content)

	if !strings.HasPrefix(text, headerDelimiter) {
		return meta, text, nil
	}

	rest := strings.TrimPrefix(text[len(headerDelimiter):], "\n")
	idx := strings.Index(rest, "\n"+headerDelimiter)
	if idx == -1 {
		return meta, text, nil
	}

	body := strings.TrimPrefix(rest[idx+len(headerDelimiter)+1:], "\n")
	if err := yaml.Unmarshal([]byte(rest[:idx]), &meta); err != nil {
		return Metadata{}, "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return meta, body, nil
}

// SplitLines splits text into lines without a trailing empty element for a
// final newline, matching how the manifest line budget is counted.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// unquote strips one layer of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
