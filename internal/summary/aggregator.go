// Package summary aggregates annotated variants into the per-analysis
// summary: classification counts, the weighted risk score, the derived risk
// level and the clinical recommendations attached to the report.
package summary

import (
	"fmt"

	"github.com/snpify/snpify-server/internal/domain"
)

// Risk weights per variant. Clinical significance carries most of the
// weight; predicted impact adds a smaller bonus on top. The total is capped
// so a long variant list cannot push the score past the scale.
const (
	pathogenicWeight       = 3.0
	likelyPathogenicWeight = 2.0
	uncertainWeight        = 0.5
	highImpactBonus        = 1.0
	moderateImpactBonus    = 0.5
	maxRiskScore           = 10.0
)

// Aggregate builds the analysis summary for a set of annotated variants.
// An empty variant list produces a zero-count LOW risk summary with the
// standard screening recommendations.
func Aggregate(variants []domain.Variant) domain.AnalysisSummary {
	s := domain.AnalysisSummary{TotalVariants: len(variants)}

	for _, v := range variants {
		switch v.ClinicalSignificance {
		case domain.PATHOGENIC:
			s.PathogenicVariants++
		case domain.LIKELY_PATHOGENIC:
			s.LikelyPathogenicVariants++
		case domain.BENIGN, domain.LIKELY_BENIGN:
			s.BenignVariants++
		default:
			s.UncertainVariants++
		}
	}

	s.RiskScore = riskScore(variants)
	s.OverallRisk = domain.RiskLevelForScore(s.RiskScore)
	s.Recommendations = recommendations(s.OverallRisk, s.PathogenicVariants)
	return s
}

func riskScore(variants []domain.Variant) float64 {
	if len(variants) == 0 {
		return 0.0
	}

	score := 0.0
	for _, v := range variants {
		switch v.ClinicalSignificance {
		case domain.PATHOGENIC:
			score += pathogenicWeight
		case domain.LIKELY_PATHOGENIC:
			score += likelyPathogenicWeight
		case domain.UNCERTAIN_SIGNIFICANCE:
			score += uncertainWeight
		}

		switch v.Impact {
		case domain.IMPACT_HIGH:
			score += highImpactBonus
		case domain.IMPACT_MODERATE:
			score += moderateImpactBonus
		}
	}

	if score > maxRiskScore {
		return maxRiskScore
	}
	return score
}

func recommendations(risk domain.RiskLevel, pathogenicCount int) []string {
	var recs []string
	switch risk {
	case domain.RISK_HIGH:
		recs = []string{
			"Immediate genetic counseling recommended",
			"Consider enhanced screening protocols",
			"Discuss preventive options with healthcare provider",
			"Family screening may be indicated",
		}
	case domain.RISK_MODERATE:
		recs = []string{
			"Genetic counseling recommended",
			"Regular monitoring advised",
			"Discuss findings with healthcare provider",
		}
	default:
		recs = []string{
			"Continue standard screening recommendations",
			"Regular follow-up as clinically indicated",
		}
	}

	if pathogenicCount > 0 {
		recs = append(recs, fmt.Sprintf(
			"Found %d pathogenic variant(s) - urgent clinical review needed", pathogenicCount))
	}
	return recs
}
