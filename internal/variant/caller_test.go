package variant

import (
	"math"
	"testing"

	"github.com/snpify/snpify-server/internal/domain"
	"github.com/snpify/snpify-server/internal/matcher"
	"github.com/snpify/snpify-server/internal/reference"
)

func brca1(t *testing.T) *reference.Sequence {
	t.Helper()
	ref, err := reference.NewRegistry().Lookup(domain.BRCA1)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	return ref
}

func TestCallSingleSubstitution(t *testing.T) {
	ref := brca1(t)
	query := []byte(ref.Sequence[:60])
	query[20] = 'T' // reference has C here

	alignment, err := matcher.Match(string(query), ref.Sequence, domain.BoyerMoore)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if alignment.Exact {
		t.Fatal("Mutated query must not match exactly")
	}

	variants := Call(string(query), ref, alignment)
	if len(variants) != 1 {
		t.Fatalf("Expected 1 variant, got %d", len(variants))
	}

	v := variants[0]
	if v.Type != domain.SUBSTITUTION {
		t.Errorf("Expected substitution, got %s", v.Type)
	}
	if v.Position != 20 {
		t.Errorf("Position must equal the mismatch offset, got %d", v.Position)
	}
	if v.RefAllele != "C" || v.AltAllele != "T" {
		t.Errorf("Unexpected alleles %s>%s", v.RefAllele, v.AltAllele)
	}
	if v.Gene != domain.BRCA1 || v.Chromosome != "17" {
		t.Errorf("Unexpected locus %s/%s", v.Gene, v.Chromosome)
	}
	if v.Mutation != "c.21C>T" {
		t.Errorf("Unexpected mutation label %q", v.Mutation)
	}
	// Isolated transition far from the window edge.
	if math.Abs(v.Confidence-0.92) > 1e-9 {
		t.Errorf("Expected confidence 0.92, got %v", v.Confidence)
	}
}

func TestCallExactMatchYieldsNoVariants(t *testing.T) {
	ref := brca1(t)
	query := ref.Sequence[10:70]

	alignment, err := matcher.Match(query, ref.Sequence, domain.KMP)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if !alignment.Exact || alignment.AlignmentStart != 10 {
		t.Fatalf("Expected exact match at 10, got %+v", alignment)
	}
	if variants := Call(query, ref, alignment); len(variants) != 0 {
		t.Errorf("Expected no variants, got %d", len(variants))
	}
}

func TestCallAscendingPositions(t *testing.T) {
	ref := brca1(t)
	query := []byte(ref.Sequence[:60])
	query[5] = flip(query[5])
	query[30] = flip(query[30])
	query[45] = flip(query[45])

	alignment, err := matcher.Match(string(query), ref.Sequence, domain.RabinKarp)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	variants := Call(string(query), ref, alignment)
	if len(variants) != 3 {
		t.Fatalf("Expected 3 variants, got %d", len(variants))
	}
	for i := 1; i < len(variants); i++ {
		if variants[i].Position <= variants[i-1].Position {
			t.Errorf("Positions out of order: %d then %d",
				variants[i-1].Position, variants[i].Position)
		}
	}
	for _, v := range variants {
		if v.ID == "" {
			t.Error("Variant ID must be assigned")
		}
	}
}

func TestCallTrailingInsertion(t *testing.T) {
	ref := brca1(t)
	overhang := "GGGCCC"
	query := ref.Sequence + overhang

	alignment, err := matcher.Match(query, ref.Sequence, domain.BoyerMoore)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if alignment.AlignmentLength != ref.Length() {
		t.Fatalf("Window must be truncated to the reference, got %d", alignment.AlignmentLength)
	}

	variants := Call(query, ref, alignment)
	if len(variants) != 1 {
		t.Fatalf("Expected only the trailing insertion, got %d variants", len(variants))
	}
	last := variants[0]
	if last.Type != domain.INSERTION {
		t.Fatalf("Expected insertion, got %s", last.Type)
	}
	if last.AltAllele != overhang || last.RefAllele != "-" {
		t.Errorf("Unexpected insertion alleles %s>%s", last.RefAllele, last.AltAllele)
	}
	if last.Position != ref.Length() {
		t.Errorf("Insertion must sit at the end of the window, got %d", last.Position)
	}
}

func TestCallTrailingDeletion(t *testing.T) {
	ref := brca1(t)
	query := ref.Sequence[:60]

	// Comparing against an explicit 100-base reference region: the query
	// covers only the first 60 bases, the remaining 40 are deleted.
	variants := Call(query, ref, &matcher.Result{AlignmentStart: 0, AlignmentLength: 100})
	if len(variants) != 1 {
		t.Fatalf("Expected only the trailing deletion, got %d variants", len(variants))
	}

	del := variants[0]
	if del.Type != domain.DELETION {
		t.Fatalf("Expected deletion, got %s", del.Type)
	}
	if del.Position != 60 {
		t.Errorf("Deletion must start where query coverage ends, got %d", del.Position)
	}
	if del.RefAllele != ref.Sequence[60:100] || del.AltAllele != "-" {
		t.Errorf("Unexpected deletion alleles %s>%s", del.RefAllele, del.AltAllele)
	}
	if want := "c.61_100del" + ref.Sequence[60:100]; del.Mutation != want {
		t.Errorf("Unexpected mutation label %q", del.Mutation)
	}
	if del.Confidence != minConfidence {
		t.Errorf("Boundary indels carry the floor confidence, got %v", del.Confidence)
	}
}

func TestCallSubstitutionWithTrailingDeletion(t *testing.T) {
	ref := brca1(t)
	query := []byte(ref.Sequence[:60])
	query[20] = 'T'

	variants := Call(string(query), ref, &matcher.Result{AlignmentStart: 0, AlignmentLength: 80})
	if len(variants) != 2 {
		t.Fatalf("Expected substitution plus deletion, got %d variants", len(variants))
	}
	if variants[0].Type != domain.SUBSTITUTION || variants[0].Position != 20 {
		t.Errorf("Unexpected first call %s at %d", variants[0].Type, variants[0].Position)
	}
	if variants[1].Type != domain.DELETION || variants[1].Position != 60 {
		t.Errorf("Unexpected second call %s at %d", variants[1].Type, variants[1].Position)
	}
	if variants[1].RefAllele != ref.Sequence[60:80] {
		t.Errorf("Deletion must cover the uncovered span, got %q", variants[1].RefAllele)
	}
}

func TestCallWindowClampedToReference(t *testing.T) {
	ref := brca1(t)
	query := ref.Sequence[ref.Length()-30:]

	// A window running past the end of the reference is clamped; the exact
	// suffix then yields no calls.
	variants := Call(query, ref, &matcher.Result{
		AlignmentStart:  ref.Length() - 30,
		AlignmentLength: 100,
	})
	if len(variants) != 0 {
		t.Errorf("Expected no variants for an exact suffix, got %d", len(variants))
	}
}

func TestConfidenceClusterPenalty(t *testing.T) {
	isolated := confidence([]int{20}, 0, 100, 'A', 'C')
	clustered := confidence([]int{18, 20, 22, 24}, 1, 100, 'A', 'C')
	if clustered >= isolated {
		t.Errorf("Clustered mismatch must score below isolated one: %v >= %v", clustered, isolated)
	}

	edge := confidence([]int{95}, 0, 100, 'A', 'C')
	if edge >= isolated {
		t.Errorf("Edge mismatch must score below interior one: %v >= %v", edge, isolated)
	}
}

func TestConfidenceBounds(t *testing.T) {
	worst := confidence([]int{94, 95, 96, 97, 98, 99}, 5, 100, 'A', 'C')
	if worst < 0.30 || worst > 0.99 {
		t.Errorf("Confidence out of bounds: %v", worst)
	}
	best := confidence([]int{10}, 0, 200, 'A', 'G')
	if best > 0.99 {
		t.Errorf("Confidence out of bounds: %v", best)
	}
}

func flip(b byte) byte {
	if b == 'A' {
		return 'G'
	}
	return 'A'
}
