package generation

import (
	"strings"
	"unicode/utf8"
)

// TrimToLimit cuts text to at most limit characters, preferring a word
// boundary and dropping trailing punctuation. Limits count runes, not
// bytes, so multibyte text is never split mid-character. A limit of
// zero or less disables trimming.
func TrimToLimit(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	cut := string(runes[:limit])
	if idx := strings.LastIndexAny(cut, " \n\t"); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " \n\t,;:.")
}
