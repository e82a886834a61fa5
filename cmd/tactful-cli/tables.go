package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-tactful/model"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Inspect and convert model tables",
}

var tablesConvertCmd = &cobra.Command{
	Use:   "convert SRC DST",
	Short: "Re-encode model tables; formats follow the file extensions",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, dst := args[0], args[1]

		t, err := model.LoadTables(src)
		if err != nil {
			return err
		}
		if _, err := model.New(t); err != nil {
			return fmt.Errorf("validating %s: %w", src, err)
		}
		if err := model.Save(dst, t); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d joint, %d lowercase, %d non-abbreviation entries)\n",
			dst, len(t.JointFeatures), len(t.LowercaseWords), len(t.NonAbbreviationWords))
		return nil
	},
}

var tablesInfoCmd = &cobra.Command{
	Use:   "info PATH",
	Short: "Print table sizes and class priors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := model.FormatOf(args[0])
		if err != nil {
			return err
		}
		m, err := model.Load(args[0])
		if err != nil {
			return err
		}

		stats := m.Stats()
		p0, p1 := m.Priors()

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Format:                  %s\n", format)
		fmt.Fprintf(w, "Joint features:          %d\n", stats.JointFeatures)
		fmt.Fprintf(w, "Lowercase words:         %d\n", stats.LowercaseWords)
		fmt.Fprintf(w, "Non-abbreviation words:  %d\n", stats.NonAbbreviationWords)
		fmt.Fprintf(w, "Smoothed priors:         %.6g / %.6g\n", p0, p1)
		return nil
	},
}

func init() {
	tablesCmd.AddCommand(tablesConvertCmd, tablesInfoCmd)
	rootCmd.AddCommand(tablesCmd)
}
