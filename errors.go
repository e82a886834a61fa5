package tactful

import "github.com/jamesainslie/go-tactful/model"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrModelNotFound indicates the model file does not exist.
	ErrModelNotFound = model.ErrModelNotFound

	// ErrInvalidModel indicates the model file exists but is malformed.
	ErrInvalidModel = model.ErrInvalidModel

	// ErrUnsupportedFormat indicates the model file extension is not recognized.
	ErrUnsupportedFormat = model.ErrUnsupportedFormat

	// ErrDegenerateScores indicates a fragment could not be scored.
	ErrDegenerateScores = model.ErrDegenerateScores
)
