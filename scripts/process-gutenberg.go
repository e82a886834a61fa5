//go:build ignore

// Process raw Project Gutenberg downloads into tactful-bench transcripts.
// Each book listed in the manifest becomes a "# Source:" transcript whose
// paragraphs are unwrapped onto single lines and separated by blank lines.
// Usage: go run ./scripts/process-gutenberg.go [-in DIR] [-out DIR] [-books FILE] [-limit BYTES]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/jamesainslie/go-tactful/internal/bench"
)

const source = "https://www.gutenberg.org/"

// book is one manifest entry, keyed by the raw file's base name.
type book struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Year   string `yaml:"year"`
}

var defaultBooks = map[string]book{
	"pride_and_prejudice": {"Pride and Prejudice", "Jane Austen", "1813"},
	"moby_dick":           {"Moby Dick", "Herman Melville", "1851"},
	"great_expectations":  {"Great Expectations", "Charles Dickens", "1861"},
	"tom_sawyer":          {"The Adventures of Tom Sawyer", "Mark Twain", "1876"},
}

var (
	startMarkers = []string{
		"*** START OF THE PROJECT GUTENBERG EBOOK",
		"*** START OF THIS PROJECT GUTENBERG EBOOK",
	}
	endMarkers = []string{
		"*** END OF THE PROJECT GUTENBERG EBOOK",
		"*** END OF THIS PROJECT GUTENBERG EBOOK",
		"End of the Project Gutenberg",
		"End of Project Gutenberg",
	}

	chapterPattern      = regexp.MustCompile(`(?m)^(Chapter|CHAPTER)\s+([IVXLC]+|[0-9]+)[.\]\s]`)
	headerPattern       = regexp.MustCompile(`^((Chapter|CHAPTER)\s+\S+.*|[IVXLC]+\.?)$`)
	illustrationPattern = regexp.MustCompile(`\[Illustration[^\]]*\]`)
)

func main() {
	inDir := flag.String("in", "testdata/gutenberg", "directory holding <name>_raw.txt downloads")
	outDir := flag.String("out", "testdata/corpus", "directory for the transcripts")
	manifest := flag.String("books", "", "optional YAML manifest of name: {title, author, year}")
	limit := flag.Int("limit", 50000, "approximate maximum body size in bytes")
	flag.Parse()

	books := defaultBooks
	if *manifest != "" {
		var err error
		if books, err = readManifest(*manifest); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading manifest: %v\n", err)
			os.Exit(1)
		}
	}

	files, err := filepath.Glob(filepath.Join(*inDir, "*_raw.txt"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No *_raw.txt files in %s\n", *inDir)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	for _, rawFile := range files {
		name := strings.TrimSuffix(filepath.Base(rawFile), "_raw.txt")
		meta, ok := books[name]
		if !ok {
			fmt.Printf("Skipping unknown book: %s\n", name)
			continue
		}

		outFile := filepath.Join(*outDir, "gutenberg-"+name+".txt")
		fmt.Printf("Processing %s...\n", name)
		if err := processBook(rawFile, outFile, meta, *limit); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", name, err)
			continue
		}

		// Read the transcript back the way tactful-bench will.
		talk, err := bench.LoadTalk(outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error validating %s: %v\n", outFile, err)
			continue
		}
		fmt.Printf("  -> %s (%d sentences)\n", outFile, len(talk.Sentences))
	}
}

func readManifest(path string) (map[string]book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var books map[string]book
	if err := yaml.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return books, nil
}

func processBook(inPath, outPath string, meta book, limit int) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	body := truncate(unwrap(stripBoilerplate(text)), limit)
	if body == "" {
		return fmt.Errorf("no body text found")
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# Source: %s\n", source)
	fmt.Fprintf(w, "# Speaker: %s\n", meta.Author)
	fmt.Fprintf(w, "# Title: %s (%s)\n\n", meta.Title, meta.Year)
	w.WriteString(body)
	w.WriteString("\n")
	return w.Flush()
}

// stripBoilerplate cuts the license preamble and trailer and skips front
// matter up to the first chapter heading.
func stripBoilerplate(text string) string {
	for _, marker := range startMarkers {
		if i := strings.Index(text, marker); i >= 0 {
			_, rest, _ := strings.Cut(text[i:], "\n")
			text = rest
			break
		}
	}
	for _, marker := range endMarkers {
		if i := strings.Index(text, marker); i >= 0 {
			text = text[:i]
			break
		}
	}
	if loc := chapterPattern.FindStringIndex(text); loc != nil {
		text = text[loc[0]:]
	}
	return illustrationPattern.ReplaceAllString(text, "")
}

// unwrap joins hard-wrapped lines into one line per paragraph. Chapter
// headings become paragraphs of their own.
func unwrap(text string) string {
	var (
		paragraphs []string
		current    []string
	)
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = current[:0]
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case headerPattern.MatchString(line):
			flush()
			paragraphs = append(paragraphs, line)
		default:
			current = append(current, line)
		}
	}
	flush()

	return strings.Join(paragraphs, "\n\n")
}

// truncate cuts body at the first sentence end past limit bytes.
func truncate(body string, limit int) string {
	if limit <= 0 || len(body) <= limit {
		return body
	}
	for i := limit; i < len(body)-1; i++ {
		if strings.IndexByte(".?!", body[i]) >= 0 && (body[i+1] == ' ' || body[i+1] == '\n') {
			return body[:i+1]
		}
	}
	return body
}
