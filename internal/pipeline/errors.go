package pipeline

import "errors"

// Failure taxonomy for oracle-boundary errors. All of these are absorbed at
// the pipeline boundary and converted into a fixed textual answer; they are
// never propagated as transport-level faults.
var (
	ErrModerationFailure     = errors.New("moderation failure")
	ErrClassificationFailure = errors.New("classification failure")
	ErrGenerationFailure     = errors.New("generation failure")
)
