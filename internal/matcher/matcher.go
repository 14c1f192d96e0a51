// Package matcher implements exact string matching of a query sequence
// against a reference using three interchangeable strategies (Boyer-Moore,
// Knuth-Morris-Pratt, Rabin-Karp), plus the best-effort alignment fallback
// used when a query carries point mutations and therefore never occurs
// verbatim in the reference.
//
// The three algorithms are observably equivalent: for the same query and
// reference they return the same set of match start positions. They differ
// only in how many character comparisons they spend finding them.
package matcher

import (
	"fmt"

	"github.com/snpify/snpify-server/internal/domain"
)

// Searcher locates all occurrences of a fixed pattern in a text. Positions
// are 0-indexed and returned in ascending order.
type Searcher interface {
	// Search returns the start positions of every exact occurrence of the
	// pattern in text.
	Search(text string) []int
}

// New constructs the searcher for the requested algorithm with the pattern
// preprocessed. The pattern is used as given; callers are expected to pass
// cleaned, upper-case sequences.
func New(algorithm domain.Algorithm, pattern string) (Searcher, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty pattern: %w", domain.ErrInvalidArgument)
	}
	switch algorithm {
	case domain.BoyerMoore:
		return newBoyerMoore(pattern), nil
	case domain.KMP:
		return newKMP(pattern), nil
	case domain.RabinKarp:
		return newRabinKarp(pattern), nil
	default:
		return nil, fmt.Errorf("algorithm %q: %w", algorithm, domain.ErrUnsupportedAlgorithm)
	}
}

// Result describes where the query aligns against the reference.
type Result struct {
	// Positions holds the start positions of exact occurrences, ascending.
	// Empty when no exact occurrence exists.
	Positions []int

	// Exact is true when at least one verbatim occurrence was found.
	Exact bool

	// AlignmentStart and AlignmentLength define the comparison window the
	// variant caller walks. For an exact match this is the first occurrence;
	// otherwise it is the best-effort window anchored at the requested
	// offset.
	AlignmentStart  int
	AlignmentLength int
}

// Match searches for query in reference with the selected algorithm. When
// no exact occurrence exists it falls back to a best-effort alignment
// anchored at position 0, so downstream variant calling always has a
// comparison window to work from.
func Match(query, reference string, algorithm domain.Algorithm) (*Result, error) {
	return MatchAt(query, reference, algorithm, 0)
}

// MatchAt is Match with a caller-supplied fallback anchor: when no exact
// occurrence exists, the alignment window starts at offset and spans
// min(len(query), len(reference)-offset) characters, truncating queries
// that run past the end of the reference.
func MatchAt(query, reference string, algorithm domain.Algorithm, offset int) (*Result, error) {
	if query == "" {
		return nil, fmt.Errorf("empty query: %w", domain.ErrInvalidArgument)
	}
	if offset < 0 || offset >= len(reference) {
		return nil, fmt.Errorf("alignment offset %d outside reference of length %d: %w",
			offset, len(reference), domain.ErrInvalidArgument)
	}

	s, err := New(algorithm, query)
	if err != nil {
		return nil, err
	}

	positions := s.Search(reference)
	if len(positions) > 0 {
		return &Result{
			Positions:       positions,
			Exact:           true,
			AlignmentStart:  positions[0],
			AlignmentLength: len(query),
		}, nil
	}

	length := len(query)
	if rest := len(reference) - offset; length > rest {
		length = rest
	}
	return &Result{
		Positions:       nil,
		Exact:           false,
		AlignmentStart:  offset,
		AlignmentLength: length,
	}, nil
}
