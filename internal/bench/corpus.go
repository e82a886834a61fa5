// Package bench scores a Segmenter against gold sentence boundaries.
//
// Two corpus formats are understood: plain-text transcripts with a "# Source:"
// header, whose reference boundaries come from a rule-based splitter, and YAML
// gold files listing hand-checked sentences.
package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Header contains metadata parsed from a transcript file header.
type Header struct {
	Source  string
	Speaker string
	Title   string
}

// ParseHeader reads the "# Key: value" comment lines at the top of a
// transcript. It returns the header and the trimmed body that follows.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	rest := text

	for rest != "" {
		line, next, _ := strings.Cut(rest, "\n")
		line = strings.TrimSpace(line)
		if line == "" {
			rest = next
			continue
		}
		comment, ok := strings.CutPrefix(line, "#")
		if !ok {
			break
		}
		rest = next

		key, value, ok := strings.Cut(comment, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "source":
			h.Source = value
		case "speaker":
			h.Speaker = value
		case "title":
			h.Title = value
		}
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	return h, strings.TrimSpace(rest), nil
}

// Sentence is a reference sentence with byte offsets into the body text.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// abbreviations never end a reference sentence. Keys are lowercased and have
// their final period removed.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
	"i.e": true, "e.g": true, "u.s": true, "u.k": true,
}

// ParseSentences splits text into reference sentences: a word ending in
// '.', '?' or '!' (optionally followed by closing quotes or brackets) ends a
// sentence unless it is a known abbreviation. Trailing text without terminal
// punctuation forms a final sentence.
func ParseSentences(text string) []Sentence {
	var sentences []Sentence
	start, end := -1, 0

	for i := 0; i < len(text); {
		if isSpace(text[i]) {
			i++
			continue
		}
		j := i
		for j < len(text) && !isSpace(text[j]) {
			j++
		}

		if start < 0 {
			start = i
		}
		end = j
		if endsSentence(text[i:j]) {
			sentences = append(sentences, Sentence{Text: text[start:j], Start: start, End: j})
			start = -1
		}
		i = j
	}

	if start >= 0 {
		sentences = append(sentences, Sentence{Text: text[start:end], Start: start, End: end})
	}

	return sentences
}

func endsSentence(word string) bool {
	w := strings.TrimRight(word, `"')]`)
	if w == "" {
		return false
	}
	switch w[len(w)-1] {
	case '?', '!':
		return true
	case '.':
		stem := strings.TrimLeft(strings.TrimSuffix(w, "."), `"'([`)
		return !abbreviations[strings.ToLower(stem)]
	}
	return false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

// Talk represents a loaded document with its reference sentences.
type Talk struct {
	ID        string // filename without extension
	Source    string // origin URL or treebank name
	Speaker   string
	Title     string
	RawText   string // body text
	Sentences []Sentence
}

// LoadTalk loads and parses a transcript file.
func LoadTalk(path string) (*Talk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	return &Talk{
		ID:        fileID(path),
		Source:    header.Source,
		Speaker:   header.Speaker,
		Title:     header.Title,
		RawText:   body,
		Sentences: ParseSentences(body),
	}, nil
}

// Gold is a YAML corpus of reference sentences.
type Gold struct {
	Name      string   `yaml:"name"`
	Source    string   `yaml:"source"`
	Title     string   `yaml:"title,omitempty"`
	Sentences []string `yaml:"sentences"`
}

// ParseGold decodes a YAML gold corpus.
func ParseGold(data []byte) (Gold, error) {
	var g Gold
	if err := yaml.Unmarshal(data, &g); err != nil {
		return Gold{}, fmt.Errorf("decode yaml: %w", err)
	}
	if g.Source == "" {
		return Gold{}, errors.New("missing source in gold corpus")
	}
	if len(g.Sentences) == 0 {
		return Gold{}, errors.New("gold corpus has no sentences")
	}
	return g, nil
}

// Talk builds the evaluation text by joining the gold sentences with single
// spaces.
func (g Gold) Talk(id string) *Talk {
	if g.Name != "" {
		id = g.Name
	}
	text := strings.Join(g.Sentences, " ")
	return &Talk{
		ID:        id,
		Source:    g.Source,
		Title:     g.Title,
		RawText:   text,
		Sentences: Boundaries(text, g.Sentences),
	}
}

// LoadGold loads a YAML gold corpus file.
func LoadGold(path string) (*Talk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	g, err := ParseGold(data)
	if err != nil {
		return nil, err
	}
	return g.Talk(fileID(path)), nil
}

// Boundaries locates each sentence in text, in order, and returns its byte
// span. Sentences that cannot be found after the previous one are skipped.
func Boundaries(text string, sentences []string) []Sentence {
	var out []Sentence
	pos := 0
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		i := strings.Index(text[pos:], s)
		if i < 0 {
			continue
		}
		start := pos + i
		end := start + len(s)
		out = append(out, Sentence{Text: s, Start: start, End: end})
		pos = end
	}
	return out
}

// LoadCorpus loads all transcript (.txt) and gold (.yaml, .yml) files from a
// directory.
func LoadCorpus(dir string) ([]*Talk, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var talks []*Talk
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		var load func(string) (*Talk, error)
		switch filepath.Ext(entry.Name()) {
		case ".txt":
			load = LoadTalk
		case ".yaml", ".yml":
			load = LoadGold
		default:
			continue
		}

		path := filepath.Join(dir, entry.Name())
		talk, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		talks = append(talks, talk)
	}

	return talks, nil
}

func fileID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
