package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CountText computes FileMetrics for a file's content. Words are
// whitespace-delimited fields; letters are runes classified as
// alphabetic by Unicode. Content that is not valid UTF-8 is rejected
// rather than counted as zero, so a corrupt file never masquerades as
// an empty one.
func CountText(filename string, content []byte) (FileMetrics, error) {
	if !utf8.Valid(content) {
		return FileMetrics{}, &DecodeError{Filename: filename}
	}

	text := string(content)

	words := len(strings.Fields(text))

	letters := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
		}
	}

	return FileMetrics{Words: words, Letters: letters}, nil
}
