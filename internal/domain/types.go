// Package domain contains the core business entities and types for SNP
// analysis of BRCA1/BRCA2 query sequences: genes, sequence kinds, matching
// algorithms, variant classifications and the analysis lifecycle.
package domain

// Gene identifies one of the supported reference genes.
type Gene string

const (
	BRCA1 Gene = "BRCA1"
	BRCA2 Gene = "BRCA2"
)

// IsValid reports whether the gene is one of the supported reference genes.
func (g Gene) IsValid() bool {
	switch g {
	case BRCA1, BRCA2:
		return true
	default:
		return false
	}
}

// String returns the string representation of the gene.
func (g Gene) String() string {
	return string(g)
}

// Chromosome returns the chromosome the gene is located on.
func (g Gene) Chromosome() string {
	if g == BRCA2 {
		return "13"
	}
	return "17"
}

// SequenceKind declares the alphabet a submitted sequence is validated against.
type SequenceKind string

const (
	DNA     SequenceKind = "DNA"
	PROTEIN SequenceKind = "PROTEIN"
)

// IsValid reports whether the sequence kind is supported.
func (k SequenceKind) IsValid() bool {
	switch k {
	case DNA, PROTEIN:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sequence kind.
func (k SequenceKind) String() string {
	return string(k)
}

// Algorithm selects the exact string-matching strategy used for alignment.
// The three algorithms are observably equivalent for exact matching and
// differ only in performance characteristics.
type Algorithm string

const (
	BoyerMoore Algorithm = "boyer-moore"
	KMP        Algorithm = "kmp"
	RabinKarp  Algorithm = "rabin-karp"
)

// IsValid reports whether the algorithm is one of the supported strategies.
func (a Algorithm) IsValid() bool {
	switch a {
	case BoyerMoore, KMP, RabinKarp:
		return true
	default:
		return false
	}
}

// String returns the string representation of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// ClinicalSignificance represents the clinical classification of a variant
// following ACMG terminology.
type ClinicalSignificance string

const (
	PATHOGENIC             ClinicalSignificance = "PATHOGENIC"
	LIKELY_PATHOGENIC      ClinicalSignificance = "LIKELY_PATHOGENIC"
	UNCERTAIN_SIGNIFICANCE ClinicalSignificance = "UNCERTAIN_SIGNIFICANCE"
	LIKELY_BENIGN          ClinicalSignificance = "LIKELY_BENIGN"
	BENIGN                 ClinicalSignificance = "BENIGN"
)

// IsValid reports whether the classification is a recognized category.
func (c ClinicalSignificance) IsValid() bool {
	switch c {
	case PATHOGENIC, LIKELY_PATHOGENIC, UNCERTAIN_SIGNIFICANCE, LIKELY_BENIGN, BENIGN:
		return true
	default:
		return false
	}
}

// String returns the string representation of the classification.
func (c ClinicalSignificance) String() string {
	return string(c)
}

// Description returns a human-readable description for clinical reporting.
func (c ClinicalSignificance) Description() string {
	switch c {
	case PATHOGENIC:
		return "Pathogenic - Disease-causing variant"
	case LIKELY_PATHOGENIC:
		return "Likely Pathogenic - Probably disease-causing variant"
	case UNCERTAIN_SIGNIFICANCE:
		return "Variant of Uncertain Significance - Clinical significance unknown"
	case LIKELY_BENIGN:
		return "Likely Benign - Probably not disease-causing"
	case BENIGN:
		return "Benign - Not disease-causing"
	default:
		return "Unknown classification"
	}
}

// VariantImpact represents the predicted functional impact of a variant.
type VariantImpact string

const (
	IMPACT_HIGH     VariantImpact = "HIGH"
	IMPACT_MODERATE VariantImpact = "MODERATE"
	IMPACT_LOW      VariantImpact = "LOW"
	IMPACT_MODIFIER VariantImpact = "MODIFIER"
)

// IsValid reports whether the impact level is recognized.
func (i VariantImpact) IsValid() bool {
	switch i {
	case IMPACT_HIGH, IMPACT_MODERATE, IMPACT_LOW, IMPACT_MODIFIER:
		return true
	default:
		return false
	}
}

// String returns the string representation of the impact level.
func (i VariantImpact) String() string {
	return string(i)
}

// VariantType represents the structural type of a called variant.
type VariantType string

const (
	SUBSTITUTION VariantType = "SUBSTITUTION"
	INSERTION    VariantType = "INSERTION"
	DELETION     VariantType = "DELETION"
)

// IsValid reports whether the variant type is recognized.
func (vt VariantType) IsValid() bool {
	switch vt {
	case SUBSTITUTION, INSERTION, DELETION:
		return true
	default:
		return false
	}
}

// String returns the string representation of the variant type.
func (vt VariantType) String() string {
	return string(vt)
}

// RiskLevel is the aggregate risk category derived from the risk score.
type RiskLevel string

const (
	RISK_HIGH     RiskLevel = "HIGH"
	RISK_MODERATE RiskLevel = "MODERATE"
	RISK_LOW      RiskLevel = "LOW"
)

// String returns the string representation of the risk level.
func (r RiskLevel) String() string {
	return string(r)
}

// RiskLevelForScore maps a risk score to its risk level. The thresholds are
// inclusive lower bounds: a score of exactly 7.0 is HIGH and exactly 4.0 is
// MODERATE.
func RiskLevelForScore(score float64) RiskLevel {
	switch {
	case score >= 7.0:
		return RISK_HIGH
	case score >= 4.0:
		return RISK_MODERATE
	default:
		return RISK_LOW
	}
}

// AnalysisStatus is the lifecycle state of an analysis.
type AnalysisStatus string

const (
	StatusPending    AnalysisStatus = "PENDING"
	StatusProcessing AnalysisStatus = "PROCESSING"
	StatusCompleted  AnalysisStatus = "COMPLETED"
	StatusFailed     AnalysisStatus = "FAILED"
)

// String returns the string representation of the status.
func (s AnalysisStatus) String() string {
	return string(s)
}

// Terminal reports whether the status is final. No transitions are allowed
// out of a terminal status.
func (s AnalysisStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether the state machine permits moving from s to
// next. PENDING moves to PROCESSING, and PROCESSING to COMPLETED or FAILED;
// PENDING may also fail directly when input is rejected before any stage
// runs.
func (s AnalysisStatus) CanTransition(next AnalysisStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusFailed
	case StatusProcessing:
		return next == StatusCompleted || next == StatusFailed
	default:
		return false
	}
}
