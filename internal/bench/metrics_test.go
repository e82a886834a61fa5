package bench

import (
	"context"
	"errors"
	"testing"

	tactful "github.com/jamesainslie/go-tactful"
	"github.com/jamesainslie/go-tactful/model"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		predicted []int
		truth     []int
		tolerance int
		wantTP    int
		wantFP    int
		wantFN    int
	}{
		{
			name:      "perfect match",
			predicted: []int{10, 20, 30},
			truth:     []int{10, 20, 30},
			tolerance: 0,
			wantTP:    3,
			wantFP:    0,
			wantFN:    0,
		},
		{
			name:      "within tolerance",
			predicted: []int{11, 19, 31},
			truth:     []int{10, 20, 30},
			tolerance: 2,
			wantTP:    3,
			wantFP:    0,
			wantFN:    0,
		},
		{
			name:      "false positive",
			predicted: []int{10, 15, 20},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    2,
			wantFP:    1,
			wantFN:    0,
		},
		{
			name:      "false negative",
			predicted: []int{10},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    1,
			wantFP:    0,
			wantFN:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Tolerance: tt.tolerance}
			got := Evaluate(tt.predicted, tt.truth, cfg)

			if got.TruePositives != tt.wantTP {
				t.Errorf("TruePositives = %d, want %d", got.TruePositives, tt.wantTP)
			}
			if got.FalsePositives != tt.wantFP {
				t.Errorf("FalsePositives = %d, want %d", got.FalsePositives, tt.wantFP)
			}
			if got.FalseNegatives != tt.wantFN {
				t.Errorf("FalseNegatives = %d, want %d", got.FalseNegatives, tt.wantFN)
			}
		})
	}
}

func TestScore(t *testing.T) {
	cfg := Config{PrecisionWeight: 3, RecallWeight: 1}
	got := Score(3, 1, 2, cfg)

	if got.Precision != 0.75 {
		t.Errorf("Precision = %v, want 0.75", got.Precision)
	}
	if got.Recall != 0.6 {
		t.Errorf("Recall = %v, want 0.6", got.Recall)
	}
	if diff := got.WeightedScore - (3*0.75+0.6)/4; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("WeightedScore = %v, want %v", got.WeightedScore, (3*0.75+0.6)/4)
	}

	zero := Score(0, 0, 0, cfg)
	if zero.Precision != 0 || zero.Recall != 0 || zero.F1 != 0 {
		t.Errorf("Score(0, 0, 0) = %+v, want all zero", zero)
	}
}

func TestMetrics_Add(t *testing.T) {
	cfg := DefaultConfig()
	a := Score(2, 0, 1, cfg)
	b := Score(1, 1, 0, cfg)

	got := a.Add(b, cfg)
	want := Score(3, 1, 1, cfg)
	if got != want {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
}

func TestEvaluateTalk(t *testing.T) {
	seg := tactful.NewWithModel(testModel(t))

	talk := &Talk{
		ID:      "test",
		RawText: "Hello world. How are you?",
		Sentences: []Sentence{
			{Text: "Hello world.", Start: 0, End: 12},
			{Text: "How are you?", Start: 13, End: 25},
		},
	}

	metrics, err := EvaluateTalk(context.Background(), seg, talk, DefaultConfig())
	if err != nil {
		t.Fatalf("EvaluateTalk() error = %v", err)
	}

	if metrics.TruePositives != 2 || metrics.FalsePositives != 0 || metrics.FalseNegatives != 0 {
		t.Errorf("EvaluateTalk() = %+v, want 2 true positives only", metrics)
	}
	if metrics.F1 != 1 {
		t.Errorf("F1 = %v, want 1", metrics.F1)
	}
}

func TestEvaluateTalk_ContextCancelled(t *testing.T) {
	seg := tactful.NewWithModel(testModel(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EvaluateTalk(ctx, seg, &Talk{ID: "x", RawText: "Hi."}, DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

// testModel builds a small model that favors boundaries before capitalized
// words and at the end of text.
func testModel(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.New(model.Tables{
		JointFeatures: map[string]float64{
			"0,<prior>":    0.5,
			"1,<prior>":    0.5,
			"0,w2cap_True": 0.2,
			"1,w2cap_True": 0.8,
			"0,w2_":        0.1,
			"1,w2_":        0.9,
			"0,w1abbr_0":   0.3,
			"1,w1abbr_0":   0.7,
			"0,w1abbr_6":   0.95,
			"1,w1abbr_6":   0.01,
		},
		NonAbbreviationWords: map[string]float64{"Dr": 1000},
	})
	if err != nil {
		t.Fatalf("model.New() failed: %v", err)
	}
	return m
}
