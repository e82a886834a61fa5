// Package main is the tactful-bench command: it scores boundary models
// against transcript and gold corpora.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	tactful "github.com/jamesainslie/go-tactful"
	"github.com/jamesainslie/go-tactful/internal/bench"
	"github.com/jamesainslie/go-tactful/model"
)

var version = "dev"

type options struct {
	modelPath string
	models    []string
	corpusDir string
	cfg       bench.Config
	sweep     bool
	sweepMin  float64
	sweepMax  float64
	sweepStep float64
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "tactful-bench",
		Short: "Evaluate sentence boundary models against reference corpora",
		Long: `tactful-bench loads every .txt transcript and .yaml gold file in the corpus
directory, segments the text, and matches predicted sentence ends against the
reference ends within a byte tolerance.

With --sweep a range of thresholds is scored and the best one reported.
With --models several model files are compared side by side.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.modelPath == "" && len(opts.models) == 0 {
				return fmt.Errorf("--model or --models required")
			}
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	defaults := bench.DefaultConfig()
	f := cmd.Flags()
	f.StringVarP(&opts.modelPath, "model", "m", "", "path to model tables")
	f.StringSliceVar(&opts.models, "models", nil, "comma-separated model paths for comparison")
	f.StringVar(&opts.corpusDir, "corpus", "testdata/corpus", "directory containing corpus files")
	f.Float64Var(&opts.cfg.Threshold, "threshold", defaults.Threshold, "boundary probability threshold")
	f.IntVar(&opts.cfg.Tolerance, "tolerance", defaults.Tolerance, "byte tolerance for boundary matching")
	f.Float64Var(&opts.cfg.PrecisionWeight, "wp", defaults.PrecisionWeight, "precision weight")
	f.Float64Var(&opts.cfg.RecallWeight, "wr", defaults.RecallWeight, "recall weight")
	f.BoolVar(&opts.sweep, "sweep", false, "run a threshold sweep")
	f.Float64Var(&opts.sweepMin, "sweep-min", 0.05, "sweep minimum threshold")
	f.Float64Var(&opts.sweepMax, "sweep-max", 1.0, "sweep maximum threshold")
	f.Float64Var(&opts.sweepStep, "sweep-step", 0.05, "sweep step size")
	cmd.MarkFlagsMutuallyExclusive("model", "models")

	return cmd
}

func run(ctx context.Context, w io.Writer, opts options) error {
	talks, err := bench.LoadCorpus(opts.corpusDir)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	fmt.Fprintf(w, "Loaded %d documents from %s\n\n", len(talks), opts.corpusDir)

	if len(opts.models) > 0 {
		return runModelComparison(ctx, w, opts, talks)
	}

	m, err := model.Load(opts.modelPath)
	if err != nil {
		return err
	}
	if opts.sweep {
		return runSweep(ctx, w, m, talks, opts)
	}
	return runSingle(ctx, w, m, talks, opts.cfg)
}

func runSingle(ctx context.Context, w io.Writer, m *model.Model, talks []*bench.Talk, cfg bench.Config) error {
	total, err := evaluateAll(ctx, m, talks, cfg)
	if err != nil {
		return err
	}
	printMetrics(w, total)
	return nil
}

func evaluateAll(ctx context.Context, m *model.Model, talks []*bench.Talk, cfg bench.Config) (bench.Metrics, error) {
	seg := tactful.NewWithModel(m, tactful.WithThreshold(cfg.Threshold))

	var total bench.Metrics
	for _, talk := range talks {
		tm, err := bench.EvaluateTalk(ctx, seg, talk, cfg)
		if err != nil {
			return bench.Metrics{}, err
		}
		slog.Debug("evaluated", "document", talk.ID, "f1", tm.F1)
		total = total.Add(tm, cfg)
	}
	return total, nil
}

func runSweep(ctx context.Context, w io.Writer, m *model.Model, talks []*bench.Talk, opts options) error {
	thresholds := bench.SweepThresholds(opts.sweepMin, opts.sweepMax, opts.sweepStep)
	cfg := opts.cfg

	results, err := bench.Sweep(ctx, talks, m, cfg, thresholds)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	fmt.Fprintf(w, "Threshold Sweep Results (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintf(w, "%-8s %-8s %-8s %-8s %-8s\n", "Thresh", "Prec", "Rec", "F1", "Weighted")

	// Print in threshold order for readability.
	byThreshold := append([]bench.SweepResult(nil), results...)
	sort.Slice(byThreshold, func(i, j int) bool {
		return byThreshold[i].Threshold < byThreshold[j].Threshold
	})
	for _, r := range byThreshold {
		fmt.Fprintf(w, "%-8.3f %-8.2f %-8.2f %-8.2f %-8.2f\n",
			r.Threshold, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1, r.Metrics.WeightedScore)
	}

	fmt.Fprintln(w, strings.Repeat("-", 50))
	if len(results) > 0 {
		best := results[0]
		fmt.Fprintf(w, "Optimal: %.3f (Weighted: %.2f)\n", best.Threshold, best.Metrics.WeightedScore)
	}
	return nil
}

func runModelComparison(ctx context.Context, w io.Writer, opts options, talks []*bench.Talk) error {
	cfg := opts.cfg

	fmt.Fprintf(w, "Model Comparison (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "%-30s %-8s %-8s %-8s\n", "Model", "Thresh", "F1", "Weighted")

	for _, path := range opts.models {
		m, err := model.Load(path)
		if err != nil {
			slog.Error("skipping model", "path", path, "error", err)
			continue
		}

		threshold := cfg.Threshold
		var best bench.Metrics
		if opts.sweep {
			thresholds := bench.SweepThresholds(opts.sweepMin, opts.sweepMax, opts.sweepStep)
			results, err := bench.Sweep(ctx, talks, m, cfg, thresholds)
			if err != nil {
				return fmt.Errorf("sweep %s: %w", path, err)
			}
			if len(results) > 0 {
				threshold = results[0].Threshold
				best = results[0].Metrics
			}
		} else {
			best, err = evaluateAll(ctx, m, talks, cfg)
			if err != nil {
				return fmt.Errorf("evaluate %s: %w", path, err)
			}
		}

		fmt.Fprintf(w, "%-30s %-8.3f %-8.2f %-8.2f\n", path, threshold, best.F1, best.WeightedScore)
	}
	return nil
}

func printMetrics(w io.Writer, m bench.Metrics) {
	fmt.Fprintf(w, "Precision: %.2f  Recall: %.2f  F1: %.2f  Weighted: %.2f\n",
		m.Precision, m.Recall, m.F1, m.WeightedScore)
	fmt.Fprintf(w, "(TP: %d, FP: %d, FN: %d)\n", m.TruePositives, m.FalsePositives, m.FalseNegatives)
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

