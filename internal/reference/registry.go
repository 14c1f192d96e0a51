// Package reference holds the read-only registry of reference sequences and
// gene annotations the analysis pipeline runs against. The registry is built
// once at process start and is safe for unsynchronized concurrent reads.
package reference

import (
	"fmt"

	"github.com/snpify/snpify-server/internal/domain"
)

// Sequence is an immutable, versioned reference sequence bound to a gene.
type Sequence struct {
	Gene         domain.Gene
	Kind         domain.SequenceKind
	Sequence     string
	Version      string
	GeneID       string
	TranscriptID string
	Chromosome   string
	Strand       string
	Description  string
}

// Length returns the reference sequence length in bases.
func (s *Sequence) Length() int {
	return len(s.Sequence)
}

// ProteinDomain is a clinically annotated region of a gene. Variants inside
// a critical domain are weighted more heavily by the clinical classifier.
type ProteinDomain struct {
	Name     string
	Start    int // inclusive, 0-indexed
	End      int // inclusive, 0-indexed
	Critical bool
}

// Contains reports whether the 0-indexed position falls inside the domain.
func (d ProteinDomain) Contains(pos int) bool {
	return pos >= d.Start && pos <= d.End
}

// Registry is the lookup table of reference sequences keyed by gene.
type Registry struct {
	sequences map[domain.Gene]*Sequence
	domains   map[domain.Gene][]ProteinDomain
}

// NewRegistry builds the registry with the built-in BRCA1 and BRCA2
// reference data.
func NewRegistry() *Registry {
	r := &Registry{
		sequences: make(map[domain.Gene]*Sequence),
		domains:   make(map[domain.Gene][]ProteinDomain),
	}

	r.sequences[domain.BRCA1] = &Sequence{
		Gene:         domain.BRCA1,
		Kind:         domain.DNA,
		Sequence:     brca1Sequence,
		Version:      "GRCh38-simplified",
		GeneID:       "ENSG00000012048",
		TranscriptID: "ENST00000357654",
		Chromosome:   "17",
		Strand:       "-",
		Description:  "BRCA1 DNA repair associated tumor suppressor",
	}
	r.sequences[domain.BRCA2] = &Sequence{
		Gene:         domain.BRCA2,
		Kind:         domain.DNA,
		Sequence:     brca2Sequence,
		Version:      "GRCh38-simplified",
		GeneID:       "ENSG00000139618",
		TranscriptID: "ENST00000380152",
		Chromosome:   "13",
		Strand:       "+",
		Description:  "BRCA2 DNA repair associated tumor suppressor",
	}

	r.domains[domain.BRCA1] = []ProteinDomain{
		{Name: "RING_finger", Start: 0, End: 108, Critical: true},
		{Name: "Linker_Region", Start: 299, End: 499, Critical: false},
		{Name: "Nuclear_Localization_Signal", Start: 502, End: 507, Critical: true},
		{Name: "Coiled_Coil", Start: 1389, End: 1423, Critical: false},
		{Name: "BRCT1", Start: 1649, End: 1735, Critical: true},
		{Name: "BRCT2", Start: 1759, End: 1854, Critical: true},
	}
	r.domains[domain.BRCA2] = []ProteinDomain{
		{Name: "PALB2_binding", Start: 20, End: 38, Critical: true},
		{Name: "BRC_repeats", Start: 1008, End: 2112, Critical: true},
		{Name: "Helical_Domain", Start: 2480, End: 2666, Critical: false},
		{Name: "OB_folds", Start: 2669, End: 3189, Critical: true},
		{Name: "Nuclear_Localization_Signal", Start: 3262, End: 3268, Critical: true},
		{Name: "CTD_RAD51_binding", Start: 3269, End: 3304, Critical: true},
	}

	return r
}

// Lookup returns the reference sequence for the gene, or ErrUnknownGene if
// the gene is not registered.
func (r *Registry) Lookup(gene domain.Gene) (*Sequence, error) {
	seq, ok := r.sequences[gene]
	if !ok {
		return nil, fmt.Errorf("reference lookup for %q: %w", gene, domain.ErrUnknownGene)
	}
	return seq, nil
}

// Domains returns the annotated protein domains for the gene. Unknown genes
// return an empty slice.
func (r *Registry) Domains(gene domain.Gene) []ProteinDomain {
	return r.domains[gene]
}

// DomainAt returns the domain containing the 0-indexed position, or nil if
// the position falls outside every annotated domain.
func (r *Registry) DomainAt(gene domain.Gene, pos int) *ProteinDomain {
	for i := range r.domains[gene] {
		if r.domains[gene][i].Contains(pos) {
			return &r.domains[gene][i]
		}
	}
	return nil
}

// Genes returns the registered gene identifiers.
func (r *Registry) Genes() []domain.Gene {
	genes := make([]domain.Gene, 0, len(r.sequences))
	for g := range r.sequences {
		genes = append(genes, g)
	}
	return genes
}
