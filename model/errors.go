package model

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrModelNotFound indicates the tables file does not exist.
	ErrModelNotFound = errors.New("tactful: model file not found")

	// ErrInvalidModel indicates the tables exist but are malformed.
	ErrInvalidModel = errors.New("tactful: invalid model format")

	// ErrUnsupportedFormat indicates the tables file extension is not recognized.
	ErrUnsupportedFormat = errors.New("tactful: unsupported model file format")

	// ErrDegenerateScores indicates both class scores collapsed to zero, so no
	// probability can be derived.
	ErrDegenerateScores = errors.New("tactful: degenerate class scores")
)
