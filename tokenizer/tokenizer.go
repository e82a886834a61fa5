// Package tokenizer implements the word-level normalization applied to text
// fragments before feature extraction.
//
// The rules follow the treebank conventions with one deliberate difference:
// periods stay attached to the word they follow, because a word that carries
// a period is exactly what the boundary classifier needs to look at. All other
// punctuation is split off, contractions are separated ("don't" -> "do n't")
// and currency, percent and ampersand spacing is made uniform.
//
// Tokenize only inserts, removes or collapses whitespace (plus rewriting ''
// and `` to a plain double quote), never reorders words and is idempotent on
// its own output.
package tokenizer

import (
	"github.com/dlclark/regexp2"
)

// rule is a single rewrite step. Patterns use .NET syntax so lookarounds are
// available.
type rule struct {
	re   *regexp2.Regexp
	repl string
}

func mustRule(pattern, repl string) rule {
	return rule{re: regexp2.MustCompile(pattern, regexp2.None), repl: repl}
}

// rules are applied in order; later rules see the output of earlier ones.
var rules = []rule{
	// Uniform quotes
	mustRule("''|``", `"`),

	// Opening brackets and double quotes
	mustRule(`(?<=^|[\s(\[{"])([(\[{"])(?=\S)`, `$1 `),

	// Closing punctuation other than periods
	mustRule(`(?<=\S)([?!)\]};:"])`, ` $1`),
	mustRule(`(?<=\S)'(?=\s|$)`, ` '`),

	// Contractions
	mustRule(`(?<=\S)(n't|N'T)(?=\s|$)`, ` $1`),
	mustRule(`(?<=[^\s'])('(?:s|S|re|RE|ve|VE|ll|LL|d|D|m|M))(?=\s|$)`, ` $1`),
	mustRule(`\b([Cc])annot\b`, `${1}an not`),

	// Double hyphens are a token of their own
	mustRule(`(?<=[^\s-])(--+)`, ` $1`),
	mustRule(`(--+)(?=[^\s-])`, `$1 `),

	// Only separate a comma when whitespace follows it
	mustRule(`(?<=\S),(?=\s|$)`, ` ,`),
	mustRule(`(?<=^|\s),(?=\S)`, `, `),

	// Ellipses
	mustRule(`\.\s\.\s\.`, `...`),
	mustRule(`(?<=[^.\s])(\.{2,})`, ` $1`),
	mustRule(`(\.{2,})(?=[^.\s])`, `$1 `),

	// "No.6"
	mustRule(`([A-Za-z]\.)(\d)`, `$1 $2`),

	// Percent, currency and ampersands
	mustRule(`(?<=\d)%`, ` %`),
	mustRule(`\$(?=\.?\d)`, `$$ `),
	mustRule(`(?<=\w)& (?=\w)`, `&`),
	mustRule(`(?<=\w\w)&(?=\w\w)`, ` & `),
}

// Tokenize normalizes punctuation spacing in text.
func Tokenize(text string) string {
	s := normalize(text)
	if s == "" {
		return ""
	}

	for _, r := range rules {
		// Replace only fails on a match timeout, which is never configured.
		out, err := r.re.Replace(s, r.repl, -1, -1)
		if err != nil {
			continue
		}
		s = out
	}

	return s
}
