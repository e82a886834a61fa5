package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGold(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Gold
		wantErr bool
	}{
		{
			name: "valid",
			input: `name: ewt-dev-0001
source: UD_English-EWT
title: weblog
sentences:
  - Dr. Smith arrived.
  - "He said: \"no.\""
`,
			want: Gold{
				Name:      "ewt-dev-0001",
				Source:    "UD_English-EWT",
				Title:     "weblog",
				Sentences: []string{"Dr. Smith arrived.", `He said: "no."`},
			},
		},
		{
			name:    "missing source",
			input:   "sentences: [a.]\n",
			wantErr: true,
		},
		{
			name:    "no sentences",
			input:   "source: x\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			input:   "source: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGold([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGold_Talk(t *testing.T) {
	g := Gold{
		Source:    "UD_English-EWT",
		Sentences: []string{"Dr. Smith arrived.", "He was late."},
	}

	talk := g.Talk("file-id")
	assert.Equal(t, "file-id", talk.ID)
	assert.Equal(t, "Dr. Smith arrived. He was late.", talk.RawText)
	assert.Equal(t, []Sentence{
		{Text: "Dr. Smith arrived.", Start: 0, End: 18},
		{Text: "He was late.", Start: 19, End: 31},
	}, talk.Sentences)
	assert.Equal(t, []int{18, 31}, talk.Ends())

	g.Name = "named"
	assert.Equal(t, "named", g.Talk("file-id").ID)
}

func TestBoundaries(t *testing.T) {
	text := "A. B.\n\nA. C."
	got := Boundaries(text, []string{"A.", " B. ", "", "A.", "missing", "C."})

	assert.Equal(t, []Sentence{
		{Text: "A.", Start: 0, End: 2},
		{Text: "B.", Start: 3, End: 5},
		{Text: "A.", Start: 7, End: 9},
		{Text: "C.", Start: 10, End: 12},
	}, got)
}

func TestLoadGold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	content := "source: handmade\nsentences:\n  - One.\n  - Two.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	talk, err := LoadGold(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", talk.ID)
	assert.Equal(t, "handmade", talk.Source)
	assert.Equal(t, "One. Two.", talk.RawText)
	assert.Len(t, talk.Sentences, 2)
}
