package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var segmentCmd = &cobra.Command{
	Use:   "segment [text...]",
	Short: "Split text into sentences",
	Long: `Segment prints one sentence per line. With --format json the sentences are
written as a JSON array, and --boundaries adds the byte offset at which each
sentence ends.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		withBoundaries, _ := cmd.Flags().GetBool("boundaries")
		if format != "text" && format != "json" {
			return fmt.Errorf("unknown format %q: want text or json", format)
		}

		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		seg, err := newSegmenter()
		if err != nil {
			return err
		}

		sentences, boundaries, err := seg.SegmentWithBoundaries(cmd.Context(), text)
		if err != nil {
			return err
		}

		return writeSentences(cmd.OutOrStdout(), format, sentences, boundaries, withBoundaries)
	},
}

type sentenceJSON struct {
	Text string `json:"text"`
	End  int    `json:"end"`
}

func writeSentences(w io.Writer, format string, sentences []string, boundaries []int, withBoundaries bool) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if !withBoundaries {
			if sentences == nil {
				sentences = []string{}
			}
			return enc.Encode(sentences)
		}
		out := make([]sentenceJSON, len(sentences))
		for i, s := range sentences {
			out[i] = sentenceJSON{Text: s, End: boundaries[i]}
		}
		return enc.Encode(out)
	}

	for i, s := range sentences {
		var err error
		if withBoundaries {
			_, err = fmt.Fprintf(w, "%d\t%s\n", boundaries[i], s)
		} else {
			_, err = fmt.Fprintln(w, s)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	addInputFlags(segmentCmd)
	segmentCmd.Flags().String("format", "text", "output format: text or json")
	segmentCmd.Flags().BoolP("boundaries", "b", false, "include sentence end offsets")

	rootCmd.AddCommand(segmentCmd)
}
