// Package sequence provides input-sequence validation and file-format
// handling for the analysis pipeline.
package sequence

import (
	"strings"

	"github.com/snpify/snpify-server/internal/domain"
)

// MinLength is the minimum accepted sequence length after whitespace
// stripping.
const MinLength = 10

const (
	dnaAlphabet     = "ATGCN"
	proteinAlphabet = "ACDEFGHIKLMNPQRSTVWY"
)

// Validate strips whitespace from the raw input, upper-cases it and checks
// every character against the alphabet of the declared kind. It returns the
// cleaned sequence, or a *domain.ValidationError describing the first
// problem found. Validate is pure and idempotent: validating an already
// clean sequence returns it unchanged.
func Validate(raw string, kind domain.SequenceKind) (string, error) {
	cleaned := Clean(raw)

	if cleaned == "" {
		return "", domain.NewValidationError(domain.EmptyInput, "sequence is empty")
	}
	if len(cleaned) < MinLength {
		return "", domain.NewValidationError(domain.TooShort,
			"sequence length %d is below the minimum length of %d", len(cleaned), MinLength)
	}

	alphabet := dnaAlphabet
	if kind == domain.PROTEIN {
		alphabet = proteinAlphabet
	}
	for i, c := range cleaned {
		if !strings.ContainsRune(alphabet, c) {
			return "", domain.NewValidationError(domain.InvalidAlphabet,
				"invalid %s character %q at position %d; allowed characters are %s",
				kind, c, i, alphabet)
		}
	}

	return cleaned, nil
}

// Clean strips all whitespace from the input and upper-cases it. It performs
// no alphabet or length checks.
func Clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			continue
		}
		b.WriteRune(c)
	}
	return strings.ToUpper(b.String())
}
