package tactful

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jamesainslie/go-tactful/document"
	"github.com/jamesainslie/go-tactful/features"
	"github.com/jamesainslie/go-tactful/model"
)

// Segmenter detects sentence boundaries with a loaded model.
// It is safe for concurrent use.
type Segmenter struct {
	model       *model.Model
	extractor   *features.Extractor
	threshold   float64
	concurrency int
	logger      *slog.Logger
}

// New creates a Segmenter from the tables at modelPath.
func New(modelPath string, opts ...Option) (*Segmenter, error) {
	m, err := model.Load(modelPath)
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}
	return NewWithModel(m, opts...), nil
}

// NewWithModel creates a Segmenter around an already loaded model.
func NewWithModel(m *model.Model, opts ...Option) *Segmenter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Segmenter{
		model:       m,
		extractor:   features.New(m),
		threshold:   cfg.threshold,
		concurrency: cfg.concurrency,
		logger:      cfg.logger,
	}
}

// Model returns the underlying model.
func (s *Segmenter) Model() *model.Model {
	return s.model
}

// Threshold returns the boundary threshold in use.
func (s *Segmenter) Threshold() float64 {
	return s.threshold
}

// Analyze fragments, featurizes and classifies text without joining the
// fragments into sentences.
func (s *Segmenter) Analyze(ctx context.Context, text string) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := document.New(text)
	s.extractor.Featurize(d)
	failed := s.model.ClassifyDocument(d, s.logger)

	s.logger.Debug("analyzed text",
		"bytes", len(text),
		"fragments", d.Len(),
		"failed", failed,
	)
	return d, nil
}

// IsComplete returns whether text appears to end on a sentence boundary, and
// the boundary probability of its final fragment. A final fragment that could
// not be classified is reported as incomplete with zero confidence.
func (s *Segmenter) IsComplete(ctx context.Context, text string) (complete bool, confidence float64, err error) {
	d, err := s.Analyze(ctx, text)
	if err != nil {
		return false, 0, err
	}

	for i := d.Len() - 1; i >= 0; i-- {
		f := d.Fragments[i]
		if f.Original == "" {
			continue
		}
		if f.Err != nil {
			// Already logged by ClassifyDocument.
			return false, 0, nil
		}
		return f.Probability > s.threshold, f.Probability, nil
	}
	return false, 0, nil
}

// Segment splits text into sentences.
func (s *Segmenter) Segment(ctx context.Context, text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}

	d, err := s.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}
	return document.Segment(d, s.threshold), nil
}

// SegmentWithBoundaries splits text into sentences and returns boundary positions.
// Boundaries are byte offsets where each sentence ends in the original text.
func (s *Segmenter) SegmentWithBoundaries(ctx context.Context, text string) (sentences []string, boundaries []int, err error) {
	if text == "" {
		return nil, nil, nil
	}

	d, err := s.Analyze(ctx, text)
	if err != nil {
		return nil, nil, err
	}

	for _, sent := range document.Sentences(d, s.threshold) {
		sentences = append(sentences, sent.Text)
		boundaries = append(boundaries, sent.End)
	}
	return sentences, boundaries, nil
}

// SegmentAll segments independent texts concurrently. Results are in input
// order. The first error cancels the remaining work.
func (s *Segmenter) SegmentAll(ctx context.Context, texts []string) ([][]string, error) {
	results := make([][]string, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, text := range texts {
		g.Go(func() error {
			sentences, err := s.Segment(ctx, text)
			if err != nil {
				return fmt.Errorf("text %d: %w", i, err)
			}
			results[i] = sentences
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
