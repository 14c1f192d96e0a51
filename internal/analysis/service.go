// Package analysis orchestrates the SNP analysis pipeline: input validation,
// alignment, variant detection, clinical annotation, quality assessment and
// report generation. Each analysis moves through the PENDING, PROCESSING and
// terminal COMPLETED or FAILED states, with progress derived from the
// weighted pipeline stages.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/snpify/snpify-server/internal/classify"
	"github.com/snpify/snpify-server/internal/domain"
	"github.com/snpify/snpify-server/internal/matcher"
	"github.com/snpify/snpify-server/internal/reference"
	"github.com/snpify/snpify-server/internal/sequence"
	"github.com/snpify/snpify-server/internal/summary"
	"github.com/snpify/snpify-server/internal/variant"
)

const algorithmVersion = "2.0.0"

// Request describes one analysis submission. Kind defaults to DNA when
// empty.
type Request struct {
	Sequence  string
	Gene      domain.Gene
	Algorithm domain.Algorithm
	Kind      domain.SequenceKind
	InputType string
	FileName  string
	FileSize  int
}

// History persists terminal results and serves aggregate statistics. It is
// optional; a nil History keeps everything in memory.
type History interface {
	Record(ctx context.Context, result *domain.AnalysisResult) error
	Statistics(ctx context.Context) (*domain.Statistics, error)
}

// Service runs analyses and tracks their results. Pipelines execute on a
// bounded worker pool; submissions beyond the pool size queue in PENDING.
type Service struct {
	store      *Store
	registry   *reference.Registry
	classifier *classify.Classifier
	history    History
	sem        chan struct{}
	log        *logrus.Entry

	mu   sync.Mutex
	done map[string]chan struct{}
}

// NewService wires the pipeline together. history may be nil; workers below
// one are raised to a single worker.
func NewService(store *Store, registry *reference.Registry, classifier *classify.Classifier, history History, workers int, logger *logrus.Logger) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		store:      store,
		registry:   registry,
		classifier: classifier,
		history:    history,
		sem:        make(chan struct{}, workers),
		log:        logger.WithField("component", "analysis"),
		done:       make(map[string]chan struct{}),
	}
}

func newAnalysisID() string {
	return fmt.Sprintf("SNP_%d_%s", time.Now().UnixMilli(),
		strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8]))
}

// Submit validates the request shape, registers a PENDING analysis and runs
// the pipeline in the background. The returned snapshot is the initial
// PENDING state; callers poll by ID for progress and the final result.
func (s *Service) Submit(ctx context.Context, req Request) (*domain.AnalysisResult, error) {
	if !req.Gene.IsValid() {
		return nil, fmt.Errorf("gene %q: %w", req.Gene, domain.ErrUnknownGene)
	}
	if !req.Algorithm.IsValid() {
		return nil, fmt.Errorf("algorithm %q: %w", req.Algorithm, domain.ErrUnsupportedAlgorithm)
	}
	if req.Kind == "" {
		req.Kind = domain.DNA
	}
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("sequence kind %q: %w", req.Kind, domain.ErrInvalidArgument)
	}

	result := &domain.AnalysisResult{
		ID:        newAnalysisID(),
		Status:    domain.StatusPending,
		Gene:      req.Gene,
		Algorithm: req.Algorithm,
		Variants:  []domain.Variant{},
		Metadata: domain.AnalysisMetadata{
			InputType:        req.InputType,
			FileName:         req.FileName,
			FileSize:         req.FileSize,
			AlgorithmVersion: algorithmVersion,
		},
		StartTime: time.Now().UTC(),
	}
	s.store.Put(result)

	s.mu.Lock()
	s.done[result.ID] = make(chan struct{})
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"analysis_id": result.ID,
		"gene":        req.Gene,
		"algorithm":   req.Algorithm,
		"input_type":  req.InputType,
	}).Info("Analysis submitted")

	go s.process(result.ID, req)

	return result.Clone(), nil
}

// Get returns a snapshot of an analysis by ID.
func (s *Service) Get(id string) (*domain.AnalysisResult, error) {
	result, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("analysis %s: %w", id, domain.ErrNotFound)
	}
	return result, nil
}

// Delete removes an analysis from the result store.
func (s *Service) Delete(id string) error {
	if !s.store.Delete(id) {
		return fmt.Errorf("analysis %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Wait blocks until the analysis reaches a terminal status or the context is
// cancelled, then returns the final snapshot.
func (s *Service) Wait(ctx context.Context, id string) (*domain.AnalysisResult, error) {
	s.mu.Lock()
	ch, ok := s.done[id]
	s.mu.Unlock()

	if ok {
		select {
		case <-ch:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.Get(id)
}

// Statistics aggregates over the history store when persistence is enabled,
// falling back to the in-memory result cache otherwise.
func (s *Service) Statistics(ctx context.Context) (*domain.Statistics, error) {
	if s.history != nil {
		return s.history.Statistics(ctx)
	}

	stats := &domain.Statistics{
		AnalysesByGene:      make(map[string]int),
		AnalysesByAlgorithm: make(map[string]int),
	}
	var totalProcessing float64
	for _, result := range s.store.Snapshot() {
		stats.TotalAnalyses++
		stats.AnalysesByGene[result.Gene.String()]++
		stats.AnalysesByAlgorithm[result.Algorithm.String()]++
		switch result.Status {
		case domain.StatusCompleted:
			stats.CompletedAnalyses++
			stats.TotalVariants += result.Summary.TotalVariants
			stats.PathogenicVariants += result.Summary.PathogenicVariants
			totalProcessing += result.Metadata.ProcessingTime
		case domain.StatusFailed:
			stats.FailedAnalyses++
		}
	}
	if stats.CompletedAnalyses > 0 {
		stats.AverageProcessingTime = totalProcessing / float64(stats.CompletedAnalyses)
	}
	return stats, nil
}

// process runs the pipeline stages for one analysis, holding a worker slot
// for the duration.
func (s *Service) process(id string, req Request) {
	s.sem <- struct{}{}
	defer func() { <-s.sem }()
	defer s.finish(id)

	log := s.log.WithField("analysis_id", id)
	s.store.Update(id, func(r *domain.AnalysisResult) {
		r.Status = domain.StatusProcessing
	})

	// Stage 1: file processing.
	cleaned, err := sequence.Validate(req.Sequence, req.Kind)
	if err != nil {
		s.fail(id, err)
		return
	}
	ref, err := s.registry.Lookup(req.Gene)
	if err != nil {
		s.fail(id, err)
		return
	}
	if req.Kind != ref.Kind {
		s.fail(id, domain.NewValidationError(domain.InvalidAlphabet,
			"%s sequences cannot be aligned against the %s %s reference",
			req.Kind, ref.Gene, ref.Kind))
		return
	}
	s.advance(id, 0)

	// Stage 2: sequence alignment.
	alignment, err := matcher.Match(cleaned, ref.Sequence, req.Algorithm)
	if err != nil {
		s.fail(id, domain.NewAnalysisError(domain.ErrCodeMatching,
			fmt.Sprintf("sequence alignment failed: %v", err)))
		return
	}
	s.store.Update(id, func(r *domain.AnalysisResult) {
		r.Metadata.AlignmentStart = alignment.AlignmentStart
		r.Metadata.ExactMatch = alignment.Exact
	})
	s.advance(id, 1)

	// Stage 3: variant detection.
	variants := variant.Call(cleaned, ref, alignment)
	s.advance(id, 2)

	// Stage 4: clinical annotation.
	variants = s.classifier.Annotate(variants)
	s.advance(id, 3)

	// Stage 5: quality assessment.
	quality := qualityScore(cleaned, variants)
	identity := alignmentIdentity(variants, alignment.AlignmentLength)
	s.store.Update(id, func(r *domain.AnalysisResult) {
		r.Metadata.QualityScore = quality
		r.Metadata.Identity = identity
	})
	s.advance(id, 4)

	// Stage 6: report generation.
	report := summary.Aggregate(variants)
	if err := report.Validate(); err != nil {
		s.fail(id, domain.NewAnalysisError(domain.ErrCodeInternal,
			fmt.Sprintf("report generation failed: %v", err)))
		return
	}
	s.store.Update(id, func(r *domain.AnalysisResult) {
		end := time.Now().UTC()
		r.Variants = variants
		r.Summary = report
		r.Status = domain.StatusCompleted
		r.Progress = 100
		r.EndTime = &end
		r.Metadata.ProcessingTime = end.Sub(r.StartTime).Seconds()
	})

	log.WithFields(logrus.Fields{
		"variants":   len(variants),
		"risk_level": report.OverallRisk,
		"risk_score": report.RiskScore,
	}).Info("Analysis completed")
}

// advance marks the stage at index i complete.
func (s *Service) advance(id string, i int) {
	s.store.Update(id, func(r *domain.AnalysisResult) {
		if p := progressAfter(i); p > r.Progress {
			r.Progress = p
		}
	})
}

// fail moves the analysis to FAILED with the mapped error code.
func (s *Service) fail(id string, err error) {
	s.store.Update(id, func(r *domain.AnalysisResult) {
		if !r.Status.CanTransition(domain.StatusFailed) {
			return
		}
		end := time.Now().UTC()
		r.Status = domain.StatusFailed
		r.Error = err.Error()
		r.ErrorCode = domain.ErrorCode(err)
		r.EndTime = &end
		r.Metadata.ProcessingTime = end.Sub(r.StartTime).Seconds()
	})

	s.log.WithFields(logrus.Fields{
		"analysis_id": id,
		"error_code":  domain.ErrorCode(err),
	}).WithError(err).Warn("Analysis failed")
}

// finish records the terminal result and releases waiters.
func (s *Service) finish(id string) {
	if s.history != nil {
		if result, ok := s.store.Get(id); ok && result.Status.Terminal() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.history.Record(ctx, result); err != nil {
				s.log.WithError(err).WithField("analysis_id", id).
					Warn("Failed to record analysis in history")
			}
		}
	}

	s.mu.Lock()
	if ch, ok := s.done[id]; ok {
		close(ch)
		delete(s.done, id)
	}
	s.mu.Unlock()
}

// qualityScore estimates run quality from sequence composition, blended
// with the mean confidence of the calls when any were made. GC content
// inside the typical genomic band scores full marks, and ambiguous bases
// are penalized steeply.
func qualityScore(seq string, variants []domain.Variant) float64 {
	if len(seq) == 0 {
		return 0
	}

	gc, n := 0, 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C':
			gc++
		case 'N':
			n++
		}
	}

	gcContent := float64(gc) / float64(len(seq))
	nFraction := float64(n) / float64(len(seq))

	gcScore := 80.0
	if gcContent >= 0.3 && gcContent <= 0.7 {
		gcScore = 100.0
	}
	nScore := 100.0 - nFraction*1000
	if nScore < 0 {
		nScore = 0
	}
	base := (gcScore + nScore) / 2

	if len(variants) == 0 {
		return base
	}
	total := 0.0
	for _, v := range variants {
		total += v.Confidence
	}
	mean := total / float64(len(variants))
	return 0.8*base + 0.2*mean*100
}

// alignmentIdentity is the fraction of the comparison window that matches
// the reference.
func alignmentIdentity(variants []domain.Variant, window int) float64 {
	if window == 0 {
		return 0
	}
	mismatches := 0
	for _, v := range variants {
		if v.Type == domain.SUBSTITUTION {
			mismatches++
		}
	}
	return float64(window-mismatches) / float64(window)
}
