package classify

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/snpify/snpify-server/internal/domain"
	"github.com/snpify/snpify-server/internal/reference"
)

func newTestClassifier() *Classifier {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(reference.NewRegistry(), logger)
}

func sub(gene domain.Gene, position int, ref, alt string) domain.Variant {
	return domain.Variant{
		ID:         "VAR_test",
		Type:       domain.SUBSTITUTION,
		Position:   position,
		Gene:       gene,
		Chromosome: gene.Chromosome(),
		RefAllele:  ref,
		AltAllele:  alt,
		Confidence: 0.9,
	}
}

func TestAnnotateKnownVariant(t *testing.T) {
	c := newTestClassifier()
	variants := c.Annotate([]domain.Variant{sub(domain.BRCA1, 68, "A", "G")})

	v := variants[0]
	if v.RSID != "rs80357914" {
		t.Errorf("Expected rs80357914, got %q", v.RSID)
	}
	if v.ClinicalSignificance != domain.PATHOGENIC {
		t.Errorf("Expected PATHOGENIC, got %s", v.ClinicalSignificance)
	}
	if v.Impact != domain.IMPACT_HIGH || v.Consequence != "missense_variant" {
		t.Errorf("Unexpected annotation %s/%s", v.Impact, v.Consequence)
	}
	if v.Frequency == nil || *v.Frequency != 0.0001 {
		t.Errorf("Expected population frequency 0.0001, got %v", v.Frequency)
	}
	if len(v.Sources) == 0 || v.Sources[0] != "ClinVar" {
		t.Errorf("Known variants must cite curated sources, got %v", v.Sources)
	}
}

func TestAnnotateKnownPositionWrongAllele(t *testing.T) {
	c := newTestClassifier()
	// Curated entry at 68 is A>G; A>T must fall through to prediction.
	variants := c.Annotate([]domain.Variant{sub(domain.BRCA1, 68, "A", "T")})

	v := variants[0]
	if v.RSID != "" {
		t.Errorf("Allele mismatch must not borrow the curated rs ID, got %q", v.RSID)
	}
	if len(v.Sources) == 0 || v.Sources[0] != "computational_prediction" {
		t.Errorf("Expected predicted annotation sources, got %v", v.Sources)
	}
}

func TestAnnotateNonsense(t *testing.T) {
	c := newTestClassifier()
	// Reference codon at 6..8 is TTA; T>A at position 7 yields the TAA stop.
	variants := c.Annotate([]domain.Variant{sub(domain.BRCA1, 7, "T", "A")})

	v := variants[0]
	if v.Consequence != "nonsense_variant" {
		t.Fatalf("Expected nonsense_variant, got %s", v.Consequence)
	}
	if v.ClinicalSignificance != domain.PATHOGENIC || v.Impact != domain.IMPACT_HIGH {
		t.Errorf("Nonsense must be PATHOGENIC/HIGH, got %s/%s", v.ClinicalSignificance, v.Impact)
	}
}

func TestAnnotateSynonymous(t *testing.T) {
	c := newTestClassifier()
	// Third codon base at position 5, GAT>GAC does not create a stop.
	variants := c.Annotate([]domain.Variant{sub(domain.BRCA1, 5, "T", "C")})

	v := variants[0]
	if v.Consequence != "synonymous_variant" {
		t.Fatalf("Expected synonymous_variant, got %s", v.Consequence)
	}
	if v.ClinicalSignificance != domain.BENIGN || v.Impact != domain.IMPACT_LOW {
		t.Errorf("Synonymous must be BENIGN/LOW, got %s/%s", v.ClinicalSignificance, v.Impact)
	}
}

func TestAnnotateMissenseInCriticalDomain(t *testing.T) {
	c := newTestClassifier()
	// Position 4 lies in the RING finger domain.
	variants := c.Annotate([]domain.Variant{sub(domain.BRCA1, 4, "A", "T")})

	v := variants[0]
	if v.Consequence != "missense_variant" {
		t.Fatalf("Expected missense_variant, got %s", v.Consequence)
	}
	if v.ClinicalSignificance != domain.LIKELY_PATHOGENIC {
		t.Errorf("Critical-domain missense must be LIKELY_PATHOGENIC, got %s", v.ClinicalSignificance)
	}
}

func TestAnnotateMissenseOutsideDomain(t *testing.T) {
	c := newTestClassifier()
	// Position 201 is between annotated domains; C at a codon start can
	// never form a stop.
	variants := c.Annotate([]domain.Variant{sub(domain.BRCA1, 201, "A", "C")})

	v := variants[0]
	if v.Consequence != "missense_variant" {
		t.Fatalf("Expected missense_variant, got %s", v.Consequence)
	}
	if v.ClinicalSignificance != domain.UNCERTAIN_SIGNIFICANCE || v.Impact != domain.IMPACT_MODERATE {
		t.Errorf("Plain missense must be UNCERTAIN/MODERATE, got %s/%s",
			v.ClinicalSignificance, v.Impact)
	}
}

func TestAnnotateIndels(t *testing.T) {
	c := newTestClassifier()
	frameshift := domain.Variant{
		Type: domain.INSERTION, Gene: domain.BRCA1, Position: 30,
		RefAllele: "-", AltAllele: "GG",
	}
	inframe := domain.Variant{
		Type: domain.INSERTION, Gene: domain.BRCA1, Position: 30,
		RefAllele: "-", AltAllele: "GGG",
	}
	frameshiftDel := domain.Variant{
		Type: domain.DELETION, Gene: domain.BRCA1, Position: 60,
		RefAllele: "ATGC", AltAllele: "-",
	}
	inframeDel := domain.Variant{
		Type: domain.DELETION, Gene: domain.BRCA1, Position: 60,
		RefAllele: "ATGCAT", AltAllele: "-",
	}
	variants := c.Annotate([]domain.Variant{frameshift, inframe, frameshiftDel, inframeDel})

	if variants[0].Consequence != "frameshift_variant" || variants[0].ClinicalSignificance != domain.PATHOGENIC {
		t.Errorf("Frameshift misclassified: %s/%s", variants[0].Consequence, variants[0].ClinicalSignificance)
	}
	if variants[1].Consequence != "inframe_insertion" || variants[1].ClinicalSignificance != domain.UNCERTAIN_SIGNIFICANCE {
		t.Errorf("In-frame insertion misclassified: %s/%s", variants[1].Consequence, variants[1].ClinicalSignificance)
	}
	if variants[2].Consequence != "frameshift_variant" || variants[2].Impact != domain.IMPACT_HIGH {
		t.Errorf("Frameshift deletion misclassified: %s/%s", variants[2].Consequence, variants[2].Impact)
	}
	if variants[3].Consequence != "inframe_deletion" || variants[3].ClinicalSignificance != domain.UNCERTAIN_SIGNIFICANCE {
		t.Errorf("In-frame deletion misclassified: %s/%s", variants[3].Consequence, variants[3].ClinicalSignificance)
	}
}

func TestAnnotateDeterministic(t *testing.T) {
	c := newTestClassifier()
	first := c.Annotate([]domain.Variant{sub(domain.BRCA1, 4, "A", "T")})[0]
	second := c.Annotate([]domain.Variant{sub(domain.BRCA1, 4, "A", "T")})[0]

	if first.Consequence != second.Consequence ||
		first.Impact != second.Impact ||
		first.ClinicalSignificance != second.ClinicalSignificance {
		t.Error("Annotation must be deterministic for identical input")
	}
}
