package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// normalize prepares text for the splitting rules.
// - Composes to NFC so accented letters are single runes
// - Collapses whitespace runs to a single space
// - Trims leading and trailing whitespace
func normalize(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFC.String(text)

	var builder strings.Builder
	builder.Grow(len(text))
	needSpace := false

	for _, r := range text {
		if unicode.IsSpace(r) {
			// Only separate once something has been written
			if builder.Len() > 0 {
				needSpace = true
			}
			continue
		}
		if needSpace {
			builder.WriteByte(' ')
			needSpace = false
		}
		builder.WriteRune(r)
	}

	return builder.String()
}
