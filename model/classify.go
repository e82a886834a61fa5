package model

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/jamesainslie/go-tactful/document"
)

// Classify returns the probability that a fragment with the given features
// ends a sentence.
//
// Scores start at the smoothed priors and are multiplied by each known
// feature's class weight; unknown features carry no evidence. The product is
// accumulated in log space so long fragments cannot underflow, then
// normalized to a two-class distribution. If neither class has any weight
// left, ErrDegenerateScores is returned.
func (m *Model) Classify(features []string) (float64, error) {
	scores := []float64{m.logPrior0, m.logPrior1}

	for _, f := range features {
		w, ok := m.joint[f]
		if !ok {
			continue
		}
		scores[0] += math.Log(w.Class0)
		scores[1] += math.Log(w.Class1)
	}

	total := floats.LogSumExp(scores)
	if math.IsInf(total, -1) || math.IsNaN(total) {
		return 0, ErrDegenerateScores
	}

	p := math.Exp(scores[1] - total)
	return math.Max(0, math.Min(1, p)), nil
}

// ClassifyDocument sets the boundary probability of every featurized
// fragment of d that has not been classified yet. A fragment that cannot be
// scored keeps probability 0 and records the error; the rest of the
// document is still classified. It returns the number of failed fragments.
func (m *Model) ClassifyDocument(d *document.Document, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}

	failed := 0
	for i, f := range d.Fragments {
		if f.Classified || f.Features == nil {
			continue
		}

		p, err := m.Classify(f.Features)
		f.Probability = p
		f.Err = err
		f.Classified = true

		if err != nil {
			failed++
			logger.Warn("fragment classification failed",
				"fragment", i,
				"text", f.Original,
				"error", err,
			)
		}
	}
	return failed
}
