package matcher

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/snpify/snpify-server/internal/domain"
)

var allAlgorithms = []domain.Algorithm{domain.BoyerMoore, domain.KMP, domain.RabinKarp}

func TestSearchFindsAllOccurrences(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    []int
	}{
		{"Single occurrence", "GATTTA", "ATGGATTTATCTGCT", []int{3}},
		{"Multiple occurrences", "ATG", "ATGCATGCATG", []int{0, 4, 8}},
		{"Overlapping occurrences", "AAA", "AAAAA", []int{0, 1, 2}},
		{"Match at start", "ATGG", "ATGGATTTAT", []int{0}},
		{"Match at end", "TTAT", "ATGGATTTAT", []int{6}},
		{"Whole text", "ATGGATTTAT", "ATGGATTTAT", []int{0}},
		{"No occurrence", "GGGG", "ATGCATGCAT", nil},
		{"Pattern longer than text", "ATGCATGCATGC", "ATGC", nil},
	}

	for _, algorithm := range allAlgorithms {
		for _, tt := range tests {
			t.Run(string(algorithm)+"/"+tt.name, func(t *testing.T) {
				s, err := New(algorithm, tt.pattern)
				if err != nil {
					t.Fatalf("New failed: %v", err)
				}
				got := s.Search(tt.text)
				if !reflect.DeepEqual(got, tt.want) {
					t.Errorf("Search(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
				}
			})
		}
	}
}

func TestAlgorithmEquivalence(t *testing.T) {
	texts := []string{
		"ATGGATTTATCTGCTCTTCGCGTTGAAGAAGTACAAAATGTCATTAATGCTATGCAGAAA",
		strings.Repeat("ATGC", 50),
		strings.Repeat("A", 80) + "T" + strings.Repeat("A", 80),
		"GCTAGCTAGCTAGCATCGATCGGATTACAGATTACA",
	}
	patterns := []string{"ATG", "GATTACA", "AAAA", "TTATCTGC", "GGGGGG"}

	for _, text := range texts {
		for _, pattern := range patterns {
			reference, err := New(domain.BoyerMoore, pattern)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			want := reference.Search(text)

			for _, algorithm := range allAlgorithms[1:] {
				s, err := New(algorithm, pattern)
				if err != nil {
					t.Fatalf("New failed: %v", err)
				}
				if got := s.Search(text); !reflect.DeepEqual(got, want) {
					t.Errorf("%s disagrees with boyer-moore for pattern %q: %v != %v",
						algorithm, pattern, got, want)
				}
			}
		}
	}
}

// Rabin-Karp must verify hash hits by direct comparison. The collider below
// is found with the same hash function the implementation uses, so the text
// is guaranteed to produce a spurious hash match.
func TestRabinKarpCollisionSafety(t *testing.T) {
	pattern := "AT"
	want := rkHash(pattern)

	collider := ""
	for c1 := byte('A'); c1 <= 'Z' && collider == ""; c1++ {
		for c2 := byte('A'); c2 <= 'Z'; c2++ {
			s := string([]byte{c1, c2})
			if s != pattern && rkHash(s) == want {
				collider = s
				break
			}
		}
	}
	if collider == "" {
		t.Fatal("No colliding window found; hash parameters changed?")
	}

	s, err := New(domain.RabinKarp, pattern)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := s.Search(collider); got != nil {
		t.Errorf("Reported hash collision %q as a match at %v", collider, got)
	}
	if got := s.Search(collider + pattern); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("Real occurrence after collider not found: got %v", got)
	}
}

func TestNewRejectsUnsupportedAlgorithm(t *testing.T) {
	_, err := New(domain.Algorithm("needleman-wunsch"), "ATGC")
	if !errors.Is(err, domain.ErrUnsupportedAlgorithm) {
		t.Errorf("Expected ErrUnsupportedAlgorithm, got %v", err)
	}
}

func TestMatchExact(t *testing.T) {
	for _, algorithm := range allAlgorithms {
		result, err := Match("GATTTA", "ATGGATTTATCTGCT", algorithm)
		if err != nil {
			t.Fatalf("Match failed: %v", err)
		}
		if !result.Exact {
			t.Errorf("%s: expected exact match", algorithm)
		}
		if result.AlignmentStart != 3 || result.AlignmentLength != 6 {
			t.Errorf("%s: unexpected alignment %d+%d", algorithm,
				result.AlignmentStart, result.AlignmentLength)
		}
	}
}

func TestMatchFallbackAlignment(t *testing.T) {
	// One substitution relative to the reference prefix, so no exact match.
	result, err := Match("ATGGATTTAC", "ATGGATTTATCTGCT", domain.BoyerMoore)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if result.Exact {
		t.Error("Expected fallback alignment, got exact match")
	}
	if result.AlignmentStart != 0 || result.AlignmentLength != 10 {
		t.Errorf("Unexpected fallback window %d+%d", result.AlignmentStart, result.AlignmentLength)
	}
}

func TestMatchQueryLongerThanReference(t *testing.T) {
	result, err := Match("ATGGATTTACCCGGG", "ATGGATTTAT", domain.KMP)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if result.Exact {
		t.Error("Expected fallback alignment")
	}
	if result.AlignmentLength != 10 {
		t.Errorf("Window must be truncated to the reference, got length %d", result.AlignmentLength)
	}
}

func TestMatchRejectsEmptyQuery(t *testing.T) {
	_, err := Match("", "ATGCATGCAT", domain.BoyerMoore)
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}

func TestMatchAtRejectsBadOffset(t *testing.T) {
	if _, err := MatchAt("ATGC", "ATGCATGCAT", domain.KMP, -1); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("Negative offset must be rejected, got %v", err)
	}
	if _, err := MatchAt("ATGC", "ATGCATGCAT", domain.KMP, 10); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("Offset past the reference must be rejected, got %v", err)
	}
}
