// Package document splits raw text into candidate sentence fragments and
// joins classified fragments back into sentences.
//
// A Document owns its fragments. Feature extraction and classification
// annotate fragments in place; Segment reads the annotations to produce the
// final sentence list.
package document

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fragment is the span of text between two candidate boundary points.
type Fragment struct {
	// Original is the source words of the fragment joined by single spaces.
	Original string

	// Normalized is the cleaned form used for feature lookups.
	Normalized string

	// Start and End are byte offsets of the fragment's span in the source.
	// Spans of consecutive fragments are contiguous.
	Start int
	End   int

	// TextEnd is the offset just past the fragment's last word. It equals
	// Start for a fragment with no words.
	TextEnd int

	// ForcedBoundary is set when the fragment was closed by a blank line or
	// by the end of unterminated input.
	ForcedBoundary bool

	// Features is nil until feature extraction runs.
	Features []string

	// Probability is the likelihood that the fragment ends a sentence; it is
	// meaningful once Classified is true.
	Probability float64
	Classified  bool

	// Err records a classification failure for this fragment.
	Err error
}

// Document is the ordered fragment sequence of one input text.
type Document struct {
	Text      string
	Fragments []*Fragment
}

// New fragments text.
//
// Text is read line by line. Every whitespace-separated word is accumulated
// and the fragment is closed after a boundary word (see IsBoundary). A blank
// line closes the current fragment as a forced boundary even when nothing is
// pending. Words left pending at the end of input form a final forced
// fragment.
func New(text string) *Document {
	d := &Document{Text: text}
	b := builder{doc: d}

	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		lineEnd := offset + len(line)

		if strings.TrimSpace(line) == "" {
			b.close(lineEnd, true)
			offset = lineEnd
			continue
		}

		for i := 0; i < len(line); {
			r, size := utf8.DecodeRuneInString(line[i:])
			if unicode.IsSpace(r) {
				i += size
				continue
			}

			j := i
			for j < len(line) {
				r, size := utf8.DecodeRuneInString(line[j:])
				if unicode.IsSpace(r) {
					break
				}
				j += size
			}

			word := line[i:j]
			b.words = append(b.words, word)
			b.textEnd = offset + j
			if IsBoundary(word) {
				b.close(offset+j, false)
			}
			i = j
		}
		offset = lineEnd
	}

	if len(b.words) > 0 {
		b.close(len(text), true)
	} else if n := len(d.Fragments); n > 0 {
		// Trailing whitespace belongs to the last fragment's span.
		d.Fragments[n-1].End = len(text)
	}

	return d
}

// builder accumulates words until a fragment closes.
type builder struct {
	doc     *Document
	words   []string
	start   int
	textEnd int
}

func (b *builder) close(end int, forced bool) {
	original := strings.Join(b.words, " ")
	textEnd := b.start
	if len(b.words) > 0 {
		textEnd = b.textEnd
	}
	b.doc.Fragments = append(b.doc.Fragments, &Fragment{
		Original:       original,
		Normalized:     NormalizeText(original),
		Start:          b.start,
		End:            end,
		TextEnd:        textEnd,
		ForcedBoundary: forced,
	})
	b.words = b.words[:0]
	b.start = end
}

// Len returns the number of fragments.
func (d *Document) Len() int {
	return len(d.Fragments)
}

// NextTokens returns the normalized tokens of the fragment following
// fragment i, or nil when i is the last fragment.
func (d *Document) NextTokens(i int) []string {
	if i < 0 || i+1 >= len(d.Fragments) {
		return nil
	}
	return strings.Fields(d.Fragments[i+1].Normalized)
}

// Source returns the exact source text covered by fragment i.
func (d *Document) Source(i int) string {
	f := d.Fragments[i]
	return d.Text[f.Start:f.End]
}
