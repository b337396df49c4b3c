package generator

import (
	"errors"
)

var (
	ErrGenerationFailed = errors.New("Failed to generate story")
	ErrCancelled        = errors.New("generation cancelled")
)

// GenerationError is returned when the model produced nothing usable.
// Its message is always ErrGenerationFailed's; the cause is kept for logging.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return ErrGenerationFailed.Error()
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// ProviderError carries a transport, auth or quota failure from the remote model unchanged.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
