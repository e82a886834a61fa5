package bench

import (
	"context"
	"sort"

	tactful "github.com/jamesainslie/go-tactful"
	"github.com/jamesainslie/go-tactful/document"
	"github.com/jamesainslie/go-tactful/model"
)

// SweepResult holds metrics for one threshold value.
type SweepResult struct {
	Threshold float64
	Metrics   Metrics
}

// SweepThresholds generates threshold values from min up to (not including)
// max with the given step.
func SweepThresholds(min, max, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	var thresholds []float64
	for i := 0; ; i++ {
		t := min + float64(i)*step
		if t >= max-step/1e6 {
			break
		}
		thresholds = append(thresholds, t)
	}
	return thresholds
}

// Sweep evaluates multiple thresholds and returns results sorted by weighted
// score, best first. Each talk is classified once; only the final sentence
// assembly depends on the threshold.
func Sweep(ctx context.Context, talks []*Talk, m *model.Model, cfg Config, thresholds []float64) ([]SweepResult, error) {
	seg := tactful.NewWithModel(m)

	docs := make([]*document.Document, len(talks))
	for i, talk := range talks {
		d, err := seg.Analyze(ctx, talk.RawText)
		if err != nil {
			return nil, err
		}
		docs[i] = d
	}

	results := make([]SweepResult, 0, len(thresholds))
	for _, threshold := range thresholds {
		var agg Metrics
		for i, talk := range talks {
			var predicted []int
			for _, s := range document.Sentences(docs[i], threshold) {
				predicted = append(predicted, s.End)
			}
			agg = agg.Add(Evaluate(predicted, talk.Ends(), cfg), cfg)
		}

		results = append(results, SweepResult{
			Threshold: threshold,
			Metrics:   agg,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})

	return results, nil
}
