package classify

import "github.com/snpify/snpify-server/internal/domain"

// knownVariant is a curated annotation for a specific substitution. Entries
// apply only when gene, position and both alleles match the observed call.
type knownVariant struct {
	RSID         string
	RefAllele    string
	AltAllele    string
	Significance domain.ClinicalSignificance
	Frequency    float64
	Consequence  string
	Impact       domain.VariantImpact
}

// Curated clinically established variants, keyed by gene and 0-indexed
// position within the simplified reference.
var knownVariants = map[domain.Gene]map[int]knownVariant{
	domain.BRCA1: {
		68: {
			RSID:         "rs80357914",
			RefAllele:    "A",
			AltAllele:    "G",
			Significance: domain.PATHOGENIC,
			Frequency:    0.0001,
			Consequence:  "missense_variant",
			Impact:       domain.IMPACT_HIGH,
		},
		185: {
			RSID:         "rs80357906",
			RefAllele:    "A",
			AltAllele:    "G",
			Significance: domain.PATHOGENIC,
			Frequency:    0.0002,
			Consequence:  "frameshift_variant",
			Impact:       domain.IMPACT_HIGH,
		},
		1135: {
			RSID:         "rs80357713",
			RefAllele:    "G",
			AltAllele:    "A",
			Significance: domain.LIKELY_PATHOGENIC,
			Frequency:    0.0001,
			Consequence:  "missense_variant",
			Impact:       domain.IMPACT_MODERATE,
		},
		1679: {
			RSID:         "rs80357887",
			RefAllele:    "G",
			AltAllele:    "A",
			Significance: domain.PATHOGENIC,
			Frequency:    0.00008,
			Consequence:  "missense_variant",
			Impact:       domain.IMPACT_HIGH,
		},
	},
	domain.BRCA2: {
		617: {
			RSID:         "rs80359550",
			RefAllele:    "T",
			AltAllele:    "G",
			Significance: domain.PATHOGENIC,
			Frequency:    0.0001,
			Consequence:  "missense_variant",
			Impact:       domain.IMPACT_HIGH,
		},
		999: {
			RSID:         "rs80359564",
			RefAllele:    "C",
			AltAllele:    "T",
			Significance: domain.LIKELY_PATHOGENIC,
			Frequency:    0.0002,
			Consequence:  "nonsense_variant",
			Impact:       domain.IMPACT_HIGH,
		},
		1206: {
			RSID:         "rs80359845",
			RefAllele:    "C",
			AltAllele:    "T",
			Significance: domain.LIKELY_PATHOGENIC,
			Frequency:    0.00015,
			Consequence:  "missense_variant",
			Impact:       domain.IMPACT_HIGH,
		},
	},
}

// lookupKnown returns the curated annotation for an observed substitution,
// or false when the call does not match a curated entry exactly.
func lookupKnown(gene domain.Gene, position int, refAllele, altAllele string) (knownVariant, bool) {
	table, ok := knownVariants[gene]
	if !ok {
		return knownVariant{}, false
	}
	kv, ok := table[position]
	if !ok || kv.RefAllele != refAllele || kv.AltAllele != altAllele {
		return knownVariant{}, false
	}
	return kv, true
}
