package domain

import (
	"fmt"
	"time"
)

// Variant is one called difference between a query sequence and the
// reference at a given reference position. Positions are 0-indexed
// reference coordinates; the Mutation label renders the conventional
// 1-based form. Variants are immutable once created.
type Variant struct {
	ID                   string               `json:"id"`
	Type                 VariantType          `json:"type"`
	Position             int                  `json:"position"`
	Chromosome           string               `json:"chromosome"`
	Gene                 Gene                 `json:"gene"`
	RefAllele            string               `json:"ref_allele"`
	AltAllele            string               `json:"alt_allele"`
	RSID                 string               `json:"rs_id,omitempty"`
	Mutation             string               `json:"mutation"`
	Consequence          string               `json:"consequence"`
	Impact               VariantImpact        `json:"impact"`
	ClinicalSignificance ClinicalSignificance `json:"clinical_significance"`
	Confidence           float64              `json:"confidence"`
	Frequency            *float64             `json:"frequency,omitempty"`
	Sources              []string             `json:"sources"`
	CreatedAt            time.Time            `json:"created_at"`
}

// Validate ensures the variant carries the data the downstream pipeline
// depends on.
func (v *Variant) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("variant validation: ID is required")
	}
	if !v.Type.IsValid() {
		return fmt.Errorf("variant validation: invalid type %q", v.Type)
	}
	if v.Position < 0 {
		return fmt.Errorf("variant validation: negative position %d", v.Position)
	}
	if !v.Gene.IsValid() {
		return fmt.Errorf("variant validation: %w", ErrUnknownGene)
	}
	if v.ClinicalSignificance != "" && !v.ClinicalSignificance.IsValid() {
		return fmt.Errorf("variant validation: invalid clinical significance %q", v.ClinicalSignificance)
	}
	if v.Confidence < 0.0 || v.Confidence > 1.0 {
		return fmt.Errorf("variant validation: confidence %v out of range [0,1]", v.Confidence)
	}
	return nil
}

// AnalysisSummary is the aggregate view over all called variants. It is
// derived deterministically from the variant list by the summary aggregator
// and is never mutated independently.
type AnalysisSummary struct {
	TotalVariants            int       `json:"total_variants"`
	PathogenicVariants       int       `json:"pathogenic_variants"`
	LikelyPathogenicVariants int       `json:"likely_pathogenic_variants"`
	UncertainVariants        int       `json:"uncertain_variants"`
	BenignVariants           int       `json:"benign_variants"`
	OverallRisk              RiskLevel `json:"overall_risk"`
	RiskScore                float64   `json:"risk_score"`
	Recommendations          []string  `json:"recommendations"`
}

// Validate enforces the partition invariant: every variant falls into
// exactly one clinical-significance bucket, so the bucket counts must sum
// to the total. A violation is a programming error in the aggregator, not
// a user-facing condition.
func (s *AnalysisSummary) Validate() error {
	sum := s.PathogenicVariants + s.LikelyPathogenicVariants + s.UncertainVariants + s.BenignVariants
	if sum != s.TotalVariants {
		return fmt.Errorf("summary partition violated: buckets sum to %d, total is %d", sum, s.TotalVariants)
	}
	if s.RiskScore < 0.0 || s.RiskScore > 10.0 {
		return fmt.Errorf("summary risk score %v out of range [0,10]", s.RiskScore)
	}
	if RiskLevelForScore(s.RiskScore) != s.OverallRisk {
		return fmt.Errorf("summary risk level %s inconsistent with score %v", s.OverallRisk, s.RiskScore)
	}
	return nil
}

// AnalysisMetadata carries provenance and quality information about one
// analysis run.
type AnalysisMetadata struct {
	InputType        string  `json:"input_type"`
	FileName         string  `json:"file_name,omitempty"`
	FileSize         int     `json:"file_size,omitempty"`
	ProcessingTime   float64 `json:"processing_time,omitempty"` // seconds
	AlgorithmVersion string  `json:"algorithm_version"`
	QualityScore     float64 `json:"quality_score"`
	AlignmentStart   int     `json:"alignment_start"`
	ExactMatch       bool    `json:"exact_match"`
	Identity         float64 `json:"identity"`
}

// Statistics summarizes the analyses the server has processed. Counts come
// from the in-memory result store by default and from the history store when
// persistence is enabled.
type Statistics struct {
	TotalAnalyses         int            `json:"total_analyses"`
	CompletedAnalyses     int            `json:"completed_analyses"`
	FailedAnalyses        int            `json:"failed_analyses"`
	TotalVariants         int            `json:"total_variants"`
	PathogenicVariants    int            `json:"pathogenic_variants"`
	AverageProcessingTime float64        `json:"average_processing_time"` // seconds
	AnalysesByGene        map[string]int `json:"analyses_by_gene"`
	AnalysesByAlgorithm   map[string]int `json:"analyses_by_algorithm"`
}

// AnalysisResult is the top-level entity for one analysis request. It is
// owned exclusively by the orchestrator while the analysis runs; once the
// status is terminal the result is immutable and safe for concurrent reads.
type AnalysisResult struct {
	ID        string           `json:"id"`
	Status    AnalysisStatus   `json:"status"`
	Gene      Gene             `json:"gene"`
	Algorithm Algorithm        `json:"algorithm"`
	Variants  []Variant        `json:"variants"`
	Summary   AnalysisSummary  `json:"summary"`
	Metadata  AnalysisMetadata `json:"metadata"`
	Progress  float64          `json:"progress"`
	StartTime time.Time        `json:"start_time"`
	EndTime   *time.Time       `json:"end_time,omitempty"`
	Error     string           `json:"error,omitempty"`
	ErrorCode string           `json:"error_code,omitempty"`
}

// Clone returns a deep copy of the result so that readers polling a running
// analysis never observe a snapshot mid-mutation.
func (r *AnalysisResult) Clone() *AnalysisResult {
	cp := *r
	if r.EndTime != nil {
		t := *r.EndTime
		cp.EndTime = &t
	}
	cp.Variants = make([]Variant, len(r.Variants))
	for i, v := range r.Variants {
		cp.Variants[i] = v
		if v.Frequency != nil {
			f := *v.Frequency
			cp.Variants[i].Frequency = &f
		}
		cp.Variants[i].Sources = append([]string(nil), v.Sources...)
	}
	cp.Summary.Recommendations = append([]string(nil), r.Summary.Recommendations...)
	return &cp
}
