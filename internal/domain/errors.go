package domain

import (
	"errors"
	"fmt"
)

// Error codes surfaced to API clients. Validation codes describe problems
// the user can fix by correcting the input; the remaining codes describe
// server-side failures.
const (
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeUnknownGene          = "UNKNOWN_GENE"
	ErrCodeUnsupportedAlgorithm = "UNSUPPORTED_ALGORITHM"
	ErrCodeMatching             = "MATCHING_ERROR"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeInternal             = "INTERNAL_ERROR"
)

// Sentinel errors for the fatal failure classes of the analysis pipeline.
var (
	ErrNotFound             = errors.New("analysis not found")
	ErrUnknownGene          = errors.New("unknown gene identifier")
	ErrUnsupportedAlgorithm = errors.New("unsupported matching algorithm")
	ErrInvalidArgument      = errors.New("invalid argument")
)

// ValidationReason identifies why sequence validation rejected an input.
type ValidationReason string

const (
	EmptyInput      ValidationReason = "EMPTY_INPUT"
	TooShort        ValidationReason = "TOO_SHORT"
	InvalidAlphabet ValidationReason = "INVALID_ALPHABET"
)

// ValidationError is returned by the sequence validator when an input
// sequence cannot be analyzed. It is always fatal to the current analysis
// and is surfaced verbatim to the caller.
type ValidationError struct {
	Reason  ValidationReason `json:"reason"`
	Message string           `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("sequence validation failed (%s): %s", e.Reason, e.Message)
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason ValidationReason, format string, args ...any) *ValidationError {
	return &ValidationError{
		Reason:  reason,
		Message: fmt.Sprintf(format, args...),
	}
}

// AnalysisError is a coded error suitable for direct serialization in API
// responses.
type AnalysisError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAnalysisError creates a coded analysis error.
func NewAnalysisError(code, message string) *AnalysisError {
	return &AnalysisError{Code: code, Message: message}
}

// ErrorCode maps an error from the analysis pipeline to its API error code.
func ErrorCode(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return ErrCodeValidation
	}
	var aerr *AnalysisError
	if errors.As(err, &aerr) {
		return aerr.Code
	}
	switch {
	case errors.Is(err, ErrUnknownGene):
		return ErrCodeUnknownGene
	case errors.Is(err, ErrUnsupportedAlgorithm):
		return ErrCodeUnsupportedAlgorithm
	case errors.Is(err, ErrInvalidArgument):
		return ErrCodeMatching
	case errors.Is(err, ErrNotFound):
		return ErrCodeNotFound
	default:
		return ErrCodeInternal
	}
}

// UserActionable reports whether the error describes a problem the user can
// fix by changing the request, as opposed to an internal failure.
func UserActionable(err error) bool {
	switch ErrorCode(err) {
	case ErrCodeValidation, ErrCodeUnknownGene, ErrCodeUnsupportedAlgorithm, ErrCodeMatching:
		return true
	default:
		return false
	}
}
