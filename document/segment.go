package document

import (
	"strings"
	"unicode"
)

// DefaultThreshold is the probability above which a fragment ends a sentence.
const DefaultThreshold = 0.5

// Sentence is one segmented sentence. Start and End are the byte offsets of
// the source span from its first word to the end of its last word.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// Sentences joins classified fragments into sentences.
//
// Fragments are appended to the current sentence in order. A fragment whose
// probability exceeds threshold, or that carries a forced boundary, closes
// the sentence. Fragments with no text contribute nothing, so runs of blank
// lines never produce empty sentences. Text still pending after the last
// fragment is dropped: only a closing fragment emits a sentence.
func Sentences(d *Document, threshold float64) []Sentence {
	var (
		sentences []Sentence
		current   []string
		start     int
		end       int
	)

	for _, f := range d.Fragments {
		if f.Original != "" {
			if len(current) == 0 {
				src := d.Text[f.Start:f.End]
				start = f.Start + len(src) - len(strings.TrimLeftFunc(src, unicode.IsSpace))
			}
			current = append(current, f.Original)
			end = f.TextEnd
		}
		if f.Probability <= threshold && !f.ForcedBoundary {
			continue
		}
		if len(current) > 0 {
			sentences = append(sentences, Sentence{
				Text:  strings.Join(current, " "),
				Start: start,
				End:   end,
			})
			current = current[:0]
		}
	}

	return sentences
}

// Segment is Sentences without the spans.
func Segment(d *Document, threshold float64) []string {
	sentences := Sentences(d, threshold)
	if len(sentences) == 0 {
		return nil
	}
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text
	}
	return out
}
