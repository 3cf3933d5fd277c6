package textlens

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates text that is not valid UTF-8.
	ErrInvalidInput = errors.New("textlens: invalid input")

	// ErrInputTooLarge indicates text longer than Config.MaxInputLength.
	ErrInputTooLarge = errors.New("textlens: input too large")

	// ErrCancelled indicates the caller aborted the analysis.
	ErrCancelled = errors.New("textlens: analysis cancelled")

	// ErrInternalFailure indicates an unexpected fault inside a stage, such as
	// a lexicon resource that failed to load.
	ErrInternalFailure = errors.New("textlens: internal failure")

	// ErrInvalidConfig indicates a configuration value out of range.
	ErrInvalidConfig = errors.New("textlens: invalid config")
)

// A StageError records which pipeline stage produced an error.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageError(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}
