// Package variant turns an alignment of a query sequence against a reference
// into concrete variant calls. The caller emits one substitution per
// mismatched window position; when the query and window lengths differ, the
// trailing excess becomes a single insertion and the missing span a single
// deletion. Calls come back in ascending position order with a per-call
// confidence score; clinical annotation happens in a later pipeline stage.
package variant

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/snpify/snpify-server/internal/domain"
	"github.com/snpify/snpify-server/internal/matcher"
	"github.com/snpify/snpify-server/internal/reference"
)

// Confidence model constants. Confidence starts from a high base and is
// reduced for calls near the edges of the alignment window (where partial
// overlap makes mismatches less trustworthy) and for calls inside mismatch
// clusters (which usually indicate misalignment rather than independent
// point mutations). Transitions get a small bonus over transversions
// because they are the biologically more common substitution class.
const (
	baseConfidence    = 0.90
	edgePenalty       = 0.15
	edgeWindow        = 10
	clusterPenalty    = 0.05
	clusterPenaltyCap = 0.25
	clusterRadius     = 5
	transitionBonus   = 0.02
	minConfidence     = 0.30
	maxConfidence     = 0.99
)

// Call walks the alignment window and reports every difference between the
// query and the reference. An exact full-length match yields an empty slice.
func Call(query string, ref *reference.Sequence, alignment *matcher.Result) []domain.Variant {
	start := alignment.AlignmentStart
	window := alignment.AlignmentLength
	if start+window > ref.Length() {
		window = ref.Length() - start
	}
	now := time.Now().UTC()

	// The window may be longer than the query when the caller compares
	// against an explicit reference region; substitutions are only walked
	// over the overlap and the remainder becomes a deletion.
	overlap := window
	if len(query) < overlap {
		overlap = len(query)
	}

	// Mismatch offsets within the overlap, collected first so confidence can
	// see the whole cluster layout.
	var mismatches []int
	for i := 0; i < overlap; i++ {
		if query[i] != ref.Sequence[start+i] {
			mismatches = append(mismatches, i)
		}
	}

	variants := make([]domain.Variant, 0, len(mismatches)+1)
	for idx, i := range mismatches {
		refBase := ref.Sequence[start+i]
		altBase := query[i]
		position := start + i

		variants = append(variants, domain.Variant{
			ID:         newVariantID(),
			Type:       domain.SUBSTITUTION,
			Position:   position,
			Chromosome: ref.Chromosome,
			Gene:       ref.Gene,
			RefAllele:  string(refBase),
			AltAllele:  string(altBase),
			Mutation:   fmt.Sprintf("c.%d%c>%c", position+1, refBase, altBase),
			Confidence: confidence(mismatches, idx, overlap, refBase, altBase),
			CreatedAt:  now,
		})
	}

	// A query that overruns a reference-truncated window contributes its
	// overhang as a single trailing insertion.
	if len(query) > window {
		position := start + window
		inserted := query[window:]
		variants = append(variants, domain.Variant{
			ID:         newVariantID(),
			Type:       domain.INSERTION,
			Position:   position,
			Chromosome: ref.Chromosome,
			Gene:       ref.Gene,
			RefAllele:  "-",
			AltAllele:  inserted,
			Mutation:   fmt.Sprintf("c.%d_ins%s", position+1, inserted),
			Confidence: minConfidence,
			CreatedAt:  now,
		})
	}

	// A query shorter than the window leaves a reference span with no query
	// coverage; that span is reported as a single trailing deletion.
	if window > len(query) {
		position := start + len(query)
		deleted := ref.Sequence[position : start+window]
		variants = append(variants, domain.Variant{
			ID:         newVariantID(),
			Type:       domain.DELETION,
			Position:   position,
			Chromosome: ref.Chromosome,
			Gene:       ref.Gene,
			RefAllele:  deleted,
			AltAllele:  "-",
			Mutation:   fmt.Sprintf("c.%d_%ddel%s", position+1, start+window, deleted),
			Confidence: minConfidence,
			CreatedAt:  now,
		})
	}

	return variants
}

func newVariantID() string {
	return "VAR_" + uuid.NewString()[:8]
}

// confidence scores the mismatch at mismatches[idx] within a window of the
// given length. It is monotone: adding nearby mismatches or moving a call
// toward the window edge never increases the score.
func confidence(mismatches []int, idx, windowLength int, refBase, altBase byte) float64 {
	c := baseConfidence

	if mismatches[idx] < edgeWindow || windowLength-mismatches[idx] <= edgeWindow {
		c -= edgePenalty
	}

	neighbors := 0
	for j, p := range mismatches {
		if j == idx {
			continue
		}
		if d := p - mismatches[idx]; d >= -clusterRadius && d <= clusterRadius {
			neighbors++
		}
	}
	penalty := clusterPenalty * float64(neighbors)
	if penalty > clusterPenaltyCap {
		penalty = clusterPenaltyCap
	}
	c -= penalty

	if isTransition(refBase, altBase) {
		c += transitionBonus
	}

	if c < minConfidence {
		c = minConfidence
	}
	if c > maxConfidence {
		c = maxConfidence
	}
	return c
}

// isTransition reports whether the substitution swaps purine for purine or
// pyrimidine for pyrimidine.
func isTransition(refBase, altBase byte) bool {
	switch {
	case refBase == 'A' && altBase == 'G', refBase == 'G' && altBase == 'A':
		return true
	case refBase == 'C' && altBase == 'T', refBase == 'T' && altBase == 'C':
		return true
	}
	return false
}
