package formatter

import (
	"strings"
	"unicode/utf8"
)

// DefaultChunkSize keeps every chunk below the ~4 KiB per-entry limit
// common to platform log sinks.
const DefaultChunkSize = 4000

// Chunk splits message into consecutive substrings of at most maxBytes bytes.
// Boundaries never fall inside a UTF-8 sequence; a single character wider
// than maxBytes is kept whole. Joining the chunks yields message again.
// maxBytes <= 0 disables splitting.
func Chunk(message string, maxBytes int) []string {
	if maxBytes <= 0 || len(message) <= maxBytes {
		return []string{message}
	}

	chunks := make([]string, 0, len(message)/maxBytes+1)
	for len(message) > maxBytes {
		end := maxBytes
		for end > 0 && !utf8.RuneStart(message[end]) {
			end--
		}
		if end == 0 {
			// Character wider than the ceiling
			_, end = utf8.DecodeRuneInString(message)
		}
		chunks = append(chunks, message[:end])
		message = message[end:]
	}
	if message != "" {
		chunks = append(chunks, message)
	}
	return chunks
}

// SplitLines splits a chunk into display lines. Trailing empty lines are
// dropped, interior empty lines are kept, and a '\r' before each '\n' is removed.
func SplitLines(chunk string) []string {
	lines := strings.Split(chunk, "\n")
	for i := range len(lines) - 1 {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
