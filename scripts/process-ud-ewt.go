//go:build ignore

// Process UD English Web Treebank CoNLL-U files into YAML gold corpora for
// tactful-bench. Each split becomes one file listing its sentences in order;
// a combined file holds all of them.
// Usage: go run ./scripts/process-ud-ewt.go [-in DIR] [-out DIR]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/jamesainslie/go-tactful/internal/bench"
)

const source = "https://github.com/UniversalDependencies/UD_English-EWT"

func main() {
	inDir := flag.String("in", "testdata/ud-ewt", "directory holding en_ewt-ud-*.conllu")
	outDir := flag.String("out", "testdata/corpus", "directory for the YAML gold files")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	var all []string
	for _, split := range []string{"train", "dev", "test"} {
		inFile := filepath.Join(*inDir, fmt.Sprintf("en_ewt-ud-%s.conllu", split))
		outFile := filepath.Join(*outDir, fmt.Sprintf("ud-ewt-%s.yaml", split))

		fmt.Printf("Processing %s...\n", split)
		sentences, err := readCoNLLU(inFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inFile, err)
			continue
		}

		gold := bench.Gold{
			Name:      "UD-EWT-" + split,
			Source:    source,
			Title:     "UD English EWT " + split,
			Sentences: sentences,
		}
		if err := writeGold(outFile, gold); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
			continue
		}
		fmt.Printf("  -> %s (%d sentences)\n", outFile, len(sentences))

		all = append(all, sentences...)
	}

	if len(all) == 0 {
		fmt.Fprintln(os.Stderr, "No sentences found")
		os.Exit(1)
	}

	combined := filepath.Join(*outDir, "ud-ewt-combined.yaml")
	if err := writeGold(combined, bench.Gold{Name: "UD-EWT-combined", Source: source, Sentences: all}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", combined, err)
		os.Exit(1)
	}
	fmt.Printf("  -> %s (%d sentences)\n", combined, len(all))
}

// readCoNLLU returns the "# text = " metadata of every sentence block.
func readCoNLLU(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var sentences []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if text, ok := strings.CutPrefix(scanner.Text(), "# text = "); ok {
			if text = strings.TrimSpace(text); text != "" {
				sentences = append(sentences, text)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning file: %w", err)
	}
	return sentences, nil
}

func writeGold(path string, gold bench.Gold) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	enc := yaml.NewEncoder(file)
	enc.SetIndent(2)
	if err := enc.Encode(gold); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
