package document

import (
	"regexp"
	"strings"

	"github.com/jamesainslie/go-tactful/tokenizer"
)

const (
	terminals = ".?!"
	closers   = `"')]`
)

// IsBoundary reports whether word syntactically looks like a sentence end:
// it carries terminal punctuation and ends with it, optionally followed by
// closing quotes or brackets. Abbreviations such as "Mr." pass this filter;
// telling them apart is the classifier's job.
func IsBoundary(word string) bool {
	if !strings.ContainsAny(word, terminals) {
		return false
	}
	trimmed := strings.TrimRight(word, closers)
	if trimmed == "" {
		return false
	}
	return strings.IndexByte(terminals, trimmed[len(trimmed)-1]) >= 0
}

var (
	numberPattern     = regexp.MustCompile(`[.,\d]*\d`)
	disallowedPattern = regexp.MustCompile(`[^a-zA-Z0-9,.;:<>\-'/$% ]`)
)

// NumberToken replaces every number in normalized text.
const NumberToken = "<NUM>"

// NormalizeText produces the lookup form of a fragment: tokenized, numbers
// collapsed to NumberToken, ambiguous characters dropped and double hyphens
// turned into spaces.
func NormalizeText(s string) string {
	s = tokenizer.Tokenize(s)
	s = numberPattern.ReplaceAllLiteralString(s, NumberToken)
	s = disallowedPattern.ReplaceAllLiteralString(s, "")
	return strings.ReplaceAll(s, "--", " ")
}
