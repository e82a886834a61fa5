package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errNoInput is returned when no text is given and stdin is a terminal.
var errNoInput = errors.New("no text provided: pass it as arguments, with --file, or on stdin")

// addInputFlags registers the flags read by readInput.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "read text from file ('-' for stdin)")
}

// readInput returns the text to process: the joined arguments, the --file
// contents, or standard input when it is not a terminal.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	path, _ := cmd.Flags().GetString("file")
	switch {
	case path != "" && path != "-":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	case path == "" && isTerminal(os.Stdin):
		return "", errNoInput
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
