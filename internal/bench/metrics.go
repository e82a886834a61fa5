package bench

import (
	"context"
	"fmt"

	tactful "github.com/jamesainslie/go-tactful"
	"github.com/jamesainslie/go-tactful/document"
)

// Config holds evaluation parameters.
type Config struct {
	Threshold       float64
	Tolerance       int // byte match tolerance
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:       document.DefaultThreshold,
		Tolerance:       3,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// Add returns the combined counts of m and o with scores recomputed.
func (m Metrics) Add(o Metrics, cfg Config) Metrics {
	return Score(m.TruePositives+o.TruePositives, m.FalsePositives+o.FalsePositives, m.FalseNegatives+o.FalseNegatives, cfg)
}

// Score derives precision, recall, F1 and the weighted score from raw counts.
func Score(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}

	return m
}

// Evaluate compares predicted boundaries against ground truth.
// Uses greedy left-to-right matching within tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			if abs(p-t) <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	return Score(tp, len(predicted)-tp, len(truth)-tp, cfg)
}

// EvaluateTalk segments a talk and scores its predicted sentence ends against
// the reference sentences.
func EvaluateTalk(ctx context.Context, seg *tactful.Segmenter, talk *Talk, cfg Config) (Metrics, error) {
	_, predicted, err := seg.SegmentWithBoundaries(ctx, talk.RawText)
	if err != nil {
		return Metrics{}, fmt.Errorf("segment %s: %w", talk.ID, err)
	}
	return Evaluate(predicted, talk.Ends(), cfg), nil
}

// Ends returns the end offset of every reference sentence.
func (t *Talk) Ends() []int {
	ends := make([]int, len(t.Sentences))
	for i, s := range t.Sentences {
		ends[i] = s.End
	}
	return ends
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
