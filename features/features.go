// Package features derives the categorical context features the boundary
// classifier scores.
//
// For a fragment of the form "... w1 | w2 ...", where w1 is the last word
// of the fragment and w2 the first word of the next one, the features are:
//   - w1, w2 and both: the words themselves (hyphenated compounds keep only the
//     side touching the candidate boundary)
//   - w1length: the number of letters and digits in w1, capped at 10
//   - w1abbr: log count of w1 occurring without its final period
//   - w2cap: whether w2 is capitalized
//   - w2lower: log count of w2 occurring lowercased
package features

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jamesainslie/go-tactful/document"
)

const maxLength = 10

// Lexicon supplies the word counts used by the frequency features.
type Lexicon interface {
	LowercaseCount(word string) (float64, bool)
	NonAbbreviationCount(word string) (float64, bool)
}

// Extract returns the feature keys for a fragment whose normalized text is
// normalized and whose successor's normalized tokens are next.
func Extract(normalized string, next []string, lx Lexicon) []string {
	var w1, w2 string
	if words := strings.Fields(normalized); len(words) > 0 {
		w1 = words[len(words)-1]
	}
	if len(next) > 0 {
		w2 = next[0]
	}

	c1 := w1
	if i := strings.IndexByte(w1, '-'); i >= 0 {
		c1 = w1[i+1:]
	}
	c2 := w2
	if i := strings.IndexByte(w2, '-'); i >= 0 {
		c2 = w2[:i]
	}

	keys := make([]string, 0, 7)
	keys = append(keys, "w1_"+c1, "w2_"+c2, "both_"+c1+"_"+c2)

	if c2 == "" {
		return keys
	}

	if isAlphabetic(strings.ReplaceAll(c1, ".", "")) {
		keys = append(keys,
			"w1length_"+strconv.Itoa(wordLength(c1)),
			"w1abbr_"+strconv.Itoa(logBucket(lx.NonAbbreviationCount(chop(c1)))),
		)
	}

	if isAlphabetic(strings.ReplaceAll(c2, ".", "")) {
		keys = append(keys,
			"w2cap_"+capitalized(c2),
			"w2lower_"+strconv.Itoa(logBucket(lx.LowercaseCount(strings.ToLower(c2)))),
		)
	}

	return keys
}

// Extractor annotates every fragment of a document with its features.
type Extractor struct {
	lexicon Lexicon
}

// New creates an Extractor backed by lx.
func New(lx Lexicon) *Extractor {
	return &Extractor{lexicon: lx}
}

// Featurize sets Features on each fragment of d that has none yet.
func (e *Extractor) Featurize(d *document.Document) {
	for i, f := range d.Fragments {
		if f.Features != nil {
			continue
		}
		f.Features = Extract(f.Normalized, d.NextTokens(i), e.lexicon)
	}
}

// logBucket returns floor(log(1+count)). Missing or unusable counts fall back
// to bucket 0.
func logBucket(count float64, ok bool) int {
	if !ok || math.IsNaN(count) || count < 0 {
		return 0
	}
	v := math.Log(1 + count)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return int(math.Floor(v))
}

// isAlphabetic reports whether s holds only ASCII letters. The empty string
// qualifies.
func isAlphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func wordLength(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	return min(n, maxLength)
}

func capitalized(s string) string {
	if s != "" && s[0] >= 'A' && s[0] <= 'Z' {
		return "True"
	}
	return "False"
}

// chop removes the last character of s.
func chop(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
