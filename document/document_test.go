package document

import (
	"reflect"
	"strings"
	"testing"
)

func TestIsBoundary(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"sat.", true},
		{"why?", true},
		{"stop!", true},
		{"Mr.", true},
		{`Stop."`, true},
		{"(end.)", true},
		{`done.'"`, true},
		{"[sic.]", true},
		{"...", true},
		{"word", false},
		{"3.50", false},
		{"e.g", false},
		{"U.S.A", false},
		{`"quoted"`, false},
		{`.)x`, false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			if got := IsBoundary(tc.word); got != tc.want {
				t.Errorf("IsBoundary(%q) = %v, want %v", tc.word, got, tc.want)
			}
		})
	}
}

func TestIsBoundary_NoTerminalPunctuation(t *testing.T) {
	for _, w := range []string{"hello", "a,b", `"x"`, "(y)", "--", "it's"} {
		if IsBoundary(w) {
			t.Errorf("IsBoundary(%q) = true, want false", w)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"numbers collapse", "It costs $3.50 today.", "It costs $ <NUM> today."},
		{"quotes dropped", `She said, "Stop."`, "She said ,  Stop. "},
		{"double hyphen", "this--that", "this   that"},
		{"thousands", "about 1,000.", "about <NUM>."},
		{"plain", "The cat sat.", "The cat sat."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeText(tc.input); got != tc.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeText_NoDigitsSurvive(t *testing.T) {
	got := NormalizeText("Call 555-1234 on 12/25/2024 at 3.5% or 1,000,000.")
	if strings.ContainsAny(got, "0123456789") {
		t.Errorf("NormalizeText left digits in %q", got)
	}
}

func originals(d *Document) []string {
	out := make([]string, len(d.Fragments))
	for i, f := range d.Fragments {
		out[i] = f.Original
	}
	return out
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   []string
		forced []bool
	}{
		{
			name:   "two sentences",
			input:  "The cat sat. The dog ran.",
			want:   []string{"The cat sat.", "The dog ran."},
			forced: []bool{false, false},
		},
		{
			name:   "abbreviation overtriggers",
			input:  "Dr. Smith arrived. He was late.",
			want:   []string{"Dr.", "Smith arrived.", "He was late."},
			forced: []bool{false, false, false},
		},
		{
			name:   "blank line",
			input:  "Hello world\n\nGoodbye world",
			want:   []string{"Hello world", "Goodbye world"},
			forced: []bool{true, true},
		},
		{
			name:   "quoted terminal",
			input:  `She said, "Stop." Then left.`,
			want:   []string{`She said, "Stop."`, "Then left."},
			forced: []bool{false, false},
		},
		{
			name:   "blank line after boundary",
			input:  "Done.\n\nNext.",
			want:   []string{"Done.", "", "Next."},
			forced: []bool{false, true, false},
		},
		{
			name:   "words span lines",
			input:  "one\ntwo three.\n",
			want:   []string{"one two three."},
			forced: []bool{false},
		},
		{
			name:   "only blank lines",
			input:  "\n \n",
			want:   []string{"", ""},
			forced: []bool{true, true},
		},
		{
			name:   "empty",
			input:  "",
			want:   []string{},
			forced: []bool{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := New(tc.input)
			got := originals(d)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("fragments = %q, want %q", got, tc.want)
			}
			for i, f := range d.Fragments {
				if f.ForcedBoundary != tc.forced[i] {
					t.Errorf("fragment %d ForcedBoundary = %v, want %v", i, f.ForcedBoundary, tc.forced[i])
				}
			}
		})
	}
}

func TestNew_SpansCoverInput(t *testing.T) {
	inputs := []string{
		"The cat sat. The dog ran.",
		"  leading space. and trailing   ",
		"Hello world\n\nGoodbye world",
		"Line one.\nLine two\n\n\nLine three?  \n",
		"\n\n",
		"no punctuation at all",
		"tab\tseparated. words\r\nhere.",
		"",
	}

	for _, in := range inputs {
		d := New(in)
		var b strings.Builder
		prev := 0
		for i, f := range d.Fragments {
			if f.Start != prev {
				t.Errorf("%q: fragment %d starts at %d, want %d", in, i, f.Start, prev)
			}
			if f.TextEnd < f.Start || f.TextEnd > f.End {
				t.Errorf("%q: fragment %d text end %d outside span %d:%d", in, i, f.TextEnd, f.Start, f.End)
			} else if tail := in[f.TextEnd:f.End]; strings.TrimSpace(tail) != "" {
				t.Errorf("%q: fragment %d has text %q after its text end", in, i, tail)
			}
			b.WriteString(d.Source(i))
			prev = f.End
		}
		if b.String() != in {
			t.Errorf("spans reconstruct %q, want %q", b.String(), in)
		}
	}
}

func TestNextTokens(t *testing.T) {
	d := New("It costs $3.50 today. Then more.")
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}

	got := d.NextTokens(0)
	want := strings.Fields(d.Fragments[1].Normalized)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NextTokens(0) = %q, want %q", got, want)
	}
	if got := d.NextTokens(1); got != nil {
		t.Errorf("NextTokens(last) = %q, want nil", got)
	}
	if !strings.Contains(d.Fragments[0].Normalized, NumberToken) {
		t.Errorf("Normalized = %q, want it to contain %s", d.Fragments[0].Normalized, NumberToken)
	}
}
