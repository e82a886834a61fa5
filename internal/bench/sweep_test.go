package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepThresholds(t *testing.T) {
	thresholds := SweepThresholds(0.01, 0.1, 0.02)

	want := []float64{0.01, 0.03, 0.05, 0.07, 0.09}
	require.Len(t, thresholds, len(want))
	for i := range want {
		assert.InDelta(t, want[i], thresholds[i], 1e-9, "threshold[%d]", i)
	}

	assert.Len(t, SweepThresholds(0.1, 0.5, 0.1), 4)
	assert.Empty(t, SweepThresholds(0.1, 0.5, 0))
}

func TestSweep(t *testing.T) {
	talks := []*Talk{
		{
			ID:        "a",
			RawText:   "Hello world. How are you?",
			Sentences: ParseSentences("Hello world. How are you?"),
		},
		{
			ID:        "b",
			RawText:   "Dr. Smith arrived. He was late.",
			Sentences: ParseSentences("Dr. Smith arrived. He was late."),
		},
	}

	results, err := Sweep(context.Background(), talks, testModel(t), DefaultConfig(), []float64{0.95, 0.5})
	require.NoError(t, err)
	require.Len(t, results, 2)

	best := results[0]
	assert.Equal(t, 0.5, best.Threshold)
	assert.Equal(t, 4, best.Metrics.TruePositives)
	assert.Equal(t, 1.0, best.Metrics.F1)

	worst := results[1]
	assert.Equal(t, 0.95, worst.Threshold)
	assert.Zero(t, worst.Metrics.TruePositives)
	assert.Equal(t, 4, worst.Metrics.FalseNegatives)
}
