package analysis

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/snpify/snpify-server/internal/classify"
	"github.com/snpify/snpify-server/internal/domain"
	"github.com/snpify/snpify-server/internal/reference"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store, err := NewStore(64)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	registry := reference.NewRegistry()
	return NewService(store, registry, classify.New(registry, logger), nil, 4, logger)
}

func submitAndWait(t *testing.T, s *Service, req Request) *domain.AnalysisResult {
	t.Helper()
	initial, err := s.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := s.Wait(ctx, initial.ID)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	return result
}

func TestAnalyzeExactMatch(t *testing.T) {
	s := newTestService(t)
	ref, _ := reference.NewRegistry().Lookup(domain.BRCA1)

	result := submitAndWait(t, s, Request{
		Sequence:  ref.Sequence[:60],
		Gene:      domain.BRCA1,
		Algorithm: domain.BoyerMoore,
		InputType: "raw",
	})

	if result.Status != domain.StatusCompleted {
		t.Fatalf("Expected COMPLETED, got %s (%s)", result.Status, result.Error)
	}
	if result.Progress != 100 {
		t.Errorf("Expected progress 100, got %v", result.Progress)
	}
	if !result.Metadata.ExactMatch || result.Metadata.AlignmentStart != 0 {
		t.Errorf("Expected exact match at 0, got %+v", result.Metadata)
	}
	if len(result.Variants) != 0 {
		t.Errorf("Exact match must yield no variants, got %d", len(result.Variants))
	}
	if result.Summary.OverallRisk != domain.RISK_LOW {
		t.Errorf("Expected LOW risk, got %s", result.Summary.OverallRisk)
	}
	if result.Metadata.Identity != 1.0 {
		t.Errorf("Expected identity 1.0, got %v", result.Metadata.Identity)
	}
	if result.EndTime == nil || result.Metadata.ProcessingTime < 0 {
		t.Error("Terminal result must carry end time and processing time")
	}
}

func TestAnalyzeDetectsSubstitution(t *testing.T) {
	s := newTestService(t)
	ref, _ := reference.NewRegistry().Lookup(domain.BRCA1)

	query := []byte(ref.Sequence[:60])
	query[20] = 'T'
	result := submitAndWait(t, s, Request{
		Sequence:  string(query),
		Gene:      domain.BRCA1,
		Algorithm: domain.KMP,
		InputType: "raw",
	})

	if result.Status != domain.StatusCompleted {
		t.Fatalf("Expected COMPLETED, got %s (%s)", result.Status, result.Error)
	}
	if len(result.Variants) != 1 {
		t.Fatalf("Expected 1 variant, got %d", len(result.Variants))
	}

	v := result.Variants[0]
	if v.Position != 20 || v.RefAllele != "C" || v.AltAllele != "T" {
		t.Errorf("Unexpected call %s at %d", v.Mutation, v.Position)
	}
	if v.ClinicalSignificance == "" || v.Consequence == "" {
		t.Error("Variant must be clinically annotated")
	}
	if result.Summary.TotalVariants != 1 {
		t.Errorf("Summary must count the variant, got %+v", result.Summary)
	}
	if result.Metadata.ExactMatch {
		t.Error("Mutated query must not report an exact match")
	}
}

func TestAnalyzeFailsOnShortSequence(t *testing.T) {
	s := newTestService(t)

	result := submitAndWait(t, s, Request{
		Sequence:  "short",
		Gene:      domain.BRCA1,
		Algorithm: domain.BoyerMoore,
		InputType: "raw",
	})

	if result.Status != domain.StatusFailed {
		t.Fatalf("Expected FAILED, got %s", result.Status)
	}
	if result.ErrorCode != domain.ErrCodeValidation {
		t.Errorf("Expected %s, got %s", domain.ErrCodeValidation, result.ErrorCode)
	}
	if !strings.Contains(result.Error, "minimum length") {
		t.Errorf("Error must mention the minimum length, got %q", result.Error)
	}
	if result.Progress >= 100 {
		t.Errorf("Failed analysis must not report full progress, got %v", result.Progress)
	}
}

func TestAnalyzeRejectsProteinAgainstDNAReference(t *testing.T) {
	s := newTestService(t)

	result := submitAndWait(t, s, Request{
		Sequence:  "MKLVFFAEDVGSNKGAIIGL",
		Gene:      domain.BRCA1,
		Algorithm: domain.BoyerMoore,
		Kind:      domain.PROTEIN,
	})

	if result.Status != domain.StatusFailed {
		t.Fatalf("Expected FAILED, got %s", result.Status)
	}
	if result.ErrorCode != domain.ErrCodeValidation {
		t.Errorf("Expected %s, got %s", domain.ErrCodeValidation, result.ErrorCode)
	}
}

func TestSubmitRejectsInvalidRequests(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Submit(ctx, Request{Sequence: "ATGCATGCAT", Gene: "TP53", Algorithm: domain.BoyerMoore})
	if !errors.Is(err, domain.ErrUnknownGene) {
		t.Errorf("Expected ErrUnknownGene, got %v", err)
	}

	_, err = s.Submit(ctx, Request{Sequence: "ATGCATGCAT", Gene: domain.BRCA1, Algorithm: "brute-force"})
	if !errors.Is(err, domain.ErrUnsupportedAlgorithm) {
		t.Errorf("Expected ErrUnsupportedAlgorithm, got %v", err)
	}
}

func TestAnalysisIDFormat(t *testing.T) {
	s := newTestService(t)
	initial, err := s.Submit(context.Background(), Request{
		Sequence:  "ATGCATGCATGC",
		Gene:      domain.BRCA1,
		Algorithm: domain.BoyerMoore,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	parts := strings.Split(initial.ID, "_")
	if len(parts) != 3 || parts[0] != "SNP" || len(parts[2]) != 8 {
		t.Errorf("Unexpected analysis ID format %q", initial.ID)
	}
}

func TestGetAndDelete(t *testing.T) {
	s := newTestService(t)
	result := submitAndWait(t, s, Request{
		Sequence:  "ATGCATGCATGC",
		Gene:      domain.BRCA2,
		Algorithm: domain.RabinKarp,
	})

	got, err := s.Get(result.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != result.ID {
		t.Errorf("Expected %s, got %s", result.ID, got.ID)
	}

	if err := s.Delete(result.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(result.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestStatisticsInMemory(t *testing.T) {
	s := newTestService(t)
	ref, _ := reference.NewRegistry().Lookup(domain.BRCA1)

	submitAndWait(t, s, Request{
		Sequence: ref.Sequence[:60], Gene: domain.BRCA1, Algorithm: domain.BoyerMoore,
	})
	submitAndWait(t, s, Request{
		Sequence: "short", Gene: domain.BRCA2, Algorithm: domain.KMP,
	})

	stats, err := s.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics failed: %v", err)
	}
	if stats.TotalAnalyses != 2 || stats.CompletedAnalyses != 1 || stats.FailedAnalyses != 1 {
		t.Errorf("Unexpected counts: %+v", stats)
	}
	if stats.AnalysesByGene["BRCA1"] != 1 || stats.AnalysesByGene["BRCA2"] != 1 {
		t.Errorf("Unexpected gene breakdown: %v", stats.AnalysesByGene)
	}
}

func TestSingleWorkerDrainsQueuedAnalyses(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store, err := NewStore(64)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	registry := reference.NewRegistry()
	s := NewService(store, registry, classify.New(registry, logger), nil, 1, logger)

	ref, _ := registry.Lookup(domain.BRCA1)
	var ids []string
	for i := 0; i < 4; i++ {
		initial, err := s.Submit(context.Background(), Request{
			Sequence:  ref.Sequence[:60],
			Gene:      domain.BRCA1,
			Algorithm: domain.BoyerMoore,
		})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		ids = append(ids, initial.ID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, id := range ids {
		result, err := s.Wait(ctx, id)
		if err != nil {
			t.Fatalf("Wait failed for %s: %v", id, err)
		}
		if result.Status != domain.StatusCompleted {
			t.Errorf("Expected COMPLETED for %s, got %s (%s)", id, result.Status, result.Error)
		}
	}
}

func TestProgressMonotone(t *testing.T) {
	s := newTestService(t)
	ref, _ := reference.NewRegistry().Lookup(domain.BRCA2)

	initial, err := s.Submit(context.Background(), Request{
		Sequence:  ref.Sequence[:120],
		Gene:      domain.BRCA2,
		Algorithm: domain.BoyerMoore,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	last := initial.Progress
	deadline := time.After(5 * time.Second)
	for {
		snapshot, err := s.Get(initial.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if snapshot.Progress < last {
			t.Fatalf("Progress went backwards: %v after %v", snapshot.Progress, last)
		}
		last = snapshot.Progress
		if snapshot.Status.Terminal() {
			break
		}
		select {
		case <-deadline:
			t.Fatal("Analysis did not finish in time")
		case <-time.After(time.Millisecond):
		}
	}
	if last != 100 {
		t.Errorf("Completed analysis must report 100, got %v", last)
	}
}
