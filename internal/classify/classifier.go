// Package classify assigns clinical annotations to called variants. The
// classifier consults a curated table of established BRCA1/BRCA2 variants
// first and falls back to deterministic consequence prediction from the
// reference codon structure and protein-domain map. Classification is pure:
// the same variant against the same reference always yields the same
// annotation.
package classify

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/snpify/snpify-server/internal/domain"
	"github.com/snpify/snpify-server/internal/reference"
)

var stopCodons = map[string]bool{"TAA": true, "TAG": true, "TGA": true}

// Classifier annotates variants with consequence, impact and clinical
// significance.
type Classifier struct {
	registry *reference.Registry
	log      *logrus.Entry
}

// New creates a classifier backed by the given reference registry.
func New(registry *reference.Registry, logger *logrus.Logger) *Classifier {
	return &Classifier{
		registry: registry,
		log:      logger.WithField("component", "classifier"),
	}
}

// Annotate fills in the clinical fields of every variant in place and
// returns the slice for chaining. Input order is preserved.
func (c *Classifier) Annotate(variants []domain.Variant) []domain.Variant {
	for i := range variants {
		c.annotate(&variants[i])
	}
	c.log.WithFields(logrus.Fields{
		"variants": len(variants),
	}).Debug("Clinical annotation completed")
	return variants
}

func (c *Classifier) annotate(v *domain.Variant) {
	if kv, ok := lookupKnown(v.Gene, v.Position, v.RefAllele, v.AltAllele); ok {
		freq := kv.Frequency
		v.RSID = kv.RSID
		v.Consequence = kv.Consequence
		v.Impact = kv.Impact
		v.ClinicalSignificance = kv.Significance
		v.Frequency = &freq
		v.Sources = []string{"ClinVar", "dbSNP"}
		return
	}

	v.Sources = []string{"computational_prediction"}

	switch v.Type {
	case domain.INSERTION, domain.DELETION:
		c.annotateIndel(v)
	default:
		c.annotateSubstitution(v)
	}
}

// annotateIndel classifies insertions and deletions by reading frame: a
// length that is not a multiple of three shifts the frame and truncates the
// protein.
func (c *Classifier) annotateIndel(v *domain.Variant) {
	length := len(v.AltAllele)
	kind := "insertion"
	if v.Type == domain.DELETION {
		length = len(v.RefAllele)
		kind = "deletion"
	}

	if length%3 != 0 {
		v.Consequence = "frameshift_variant"
		v.Impact = domain.IMPACT_HIGH
		v.ClinicalSignificance = domain.PATHOGENIC
		return
	}
	v.Consequence = "inframe_" + kind
	v.Impact = domain.IMPACT_MODERATE
	v.ClinicalSignificance = domain.UNCERTAIN_SIGNIFICANCE
}

// annotateSubstitution predicts the consequence of a point substitution from
// the reference codon structure. The simplified references are treated as a
// single coding frame starting at position 0.
func (c *Classifier) annotateSubstitution(v *domain.Variant) {
	ref, err := c.registry.Lookup(v.Gene)
	if err != nil {
		c.log.WithError(err).WithField("gene", v.Gene).Warn("Classifying variant for unknown gene")
		v.Consequence = "unknown"
		v.Impact = domain.IMPACT_MODIFIER
		v.ClinicalSignificance = domain.UNCERTAIN_SIGNIFICANCE
		return
	}

	switch {
	case c.createsStopCodon(ref, v.Position, v.AltAllele):
		v.Consequence = "nonsense_variant"
		v.Impact = domain.IMPACT_HIGH
		v.ClinicalSignificance = domain.PATHOGENIC

	case v.Position%3 == 2:
		// Third codon base, usually wobble.
		v.Consequence = "synonymous_variant"
		v.Impact = domain.IMPACT_LOW
		v.ClinicalSignificance = domain.BENIGN

	default:
		v.Consequence = "missense_variant"
		v.Impact = domain.IMPACT_MODERATE
		v.ClinicalSignificance = domain.UNCERTAIN_SIGNIFICANCE
		if d := c.registry.DomainAt(v.Gene, v.Position); d != nil && d.Critical {
			v.ClinicalSignificance = domain.LIKELY_PATHOGENIC
		}
	}
}

// createsStopCodon reports whether substituting alt at position turns the
// surrounding reference codon into a stop codon.
func (c *Classifier) createsStopCodon(ref *reference.Sequence, position int, alt string) bool {
	if len(alt) != 1 {
		return false
	}
	codonStart := position - position%3
	if codonStart+3 > ref.Length() {
		return false
	}
	var b strings.Builder
	for i := codonStart; i < codonStart+3; i++ {
		if i == position {
			b.WriteString(alt)
		} else {
			b.WriteByte(ref.Sequence[i])
		}
	}
	return stopCodons[b.String()]
}
