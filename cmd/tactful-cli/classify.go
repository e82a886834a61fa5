package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-tactful/document"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Show every candidate fragment with its boundary probability",
	Long: `Classify prints the fragments the text was cut into, each with its boundary
probability, whether it was forced by a blank line or the end of input, and
optionally the features it was scored on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showFeatures, _ := cmd.Flags().GetBool("features")
		asJSON, _ := cmd.Flags().GetBool("json")

		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		seg, err := newSegmenter()
		if err != nil {
			return err
		}

		d, err := seg.Analyze(cmd.Context(), text)
		if err != nil {
			return err
		}

		if asJSON {
			return writeFragmentsJSON(cmd.OutOrStdout(), d)
		}
		return writeFragments(cmd.OutOrStdout(), d, seg.Threshold(), showFeatures)
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete [text...]",
	Short: "Report whether text ends on a sentence boundary",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		seg, err := newSegmenter()
		if err != nil {
			return err
		}

		complete, confidence, err := seg.IsComplete(cmd.Context(), text)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Text: %q\n", text)
		fmt.Fprintf(w, "Complete: %v\n", complete)
		fmt.Fprintf(w, "Confidence: %.4f\n", confidence)
		return nil
	},
}

func writeFragments(w io.Writer, d *document.Document, threshold float64, showFeatures bool) error {
	for i, f := range d.Fragments {
		mark := " "
		switch {
		case f.Err != nil:
			mark = "!"
		case f.ForcedBoundary:
			mark = "F"
		case f.Probability > threshold:
			mark = "|"
		}

		if _, err := fmt.Fprintf(w, "%3d %s %.4f  %q\n", i, mark, f.Probability, f.Original); err != nil {
			return err
		}
		if showFeatures && len(f.Features) > 0 {
			if _, err := fmt.Fprintf(w, "        %s\n", strings.Join(f.Features, " ")); err != nil {
				return err
			}
		}
		if f.Err != nil {
			if _, err := fmt.Fprintf(w, "        error: %v\n", f.Err); err != nil {
				return err
			}
		}
	}
	return nil
}

type fragmentJSON struct {
	Original    string   `json:"original"`
	Normalized  string   `json:"normalized"`
	Start       int      `json:"start"`
	End         int      `json:"end"`
	Forced      bool     `json:"forced,omitempty"`
	Probability float64  `json:"probability"`
	Features    []string `json:"features"`
	Error       string   `json:"error,omitempty"`
}

func writeFragmentsJSON(w io.Writer, d *document.Document) error {
	out := make([]fragmentJSON, len(d.Fragments))
	for i, f := range d.Fragments {
		out[i] = fragmentJSON{
			Original:    f.Original,
			Normalized:  f.Normalized,
			Start:       f.Start,
			End:         f.End,
			Forced:      f.ForcedBoundary,
			Probability: f.Probability,
			Features:    f.Features,
		}
		if f.Err != nil {
			out[i].Error = f.Err.Error()
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	addInputFlags(classifyCmd)
	classifyCmd.Flags().Bool("features", false, "print the features of each fragment")
	classifyCmd.Flags().Bool("json", false, "write fragments as JSON")
	classifyCmd.MarkFlagsMutuallyExclusive("features", "json")

	addInputFlags(completeCmd)

	rootCmd.AddCommand(classifyCmd, completeCmd)
}
