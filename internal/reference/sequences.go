package reference

// Reference coding sequences for the supported genes. These are the
// simplified BRCA1/BRCA2 coding sequences the analysis pipeline aligns
// queries against; they are loaded into the registry once at startup and
// never mutated.

const brca1Sequence = "ATGGATTTATCTGCTCTTCGCGTTGAAGAAGTACAAAATGTCATTAATGCTATGCAGAAAATCTTAGAGTGT" +
	"CCCATCTGGTAAGTCAGGATACAGCTGTGAGCCAGATCCCTGACCCTGATGCTGAACGAATGGCTGGACCCA" +
	"AGATGGGCTCTGCAGCAAGCTGGAGGGGAAAGGTCTTCGAACGAGGTGAGACAGCCCTTGCCCCTTACCACT" +
	"GGCAGAGAAACCTTTTGGGAGCTGTGAAACCTTAAATGAGAAGCAAGAAGTTTGAAACTGCACATCTTTCAC" +
	"ATCTAAGTCAGTGGAGGAGGAGAATCAGGAGCGAGTATCCAGGTTTTTCAAACTTTGGTTGGTTTGGAGGAG" +
	"GAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAG" +
	"GAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGAGGGGGCATCCAGCTCGGCTTTGTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGC" +
	"CTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGT" +
	"TGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTTGGTTGGTTTGCCTTTT"

const brca2Sequence = "ATGCCTATTGGATCCAAAGAGAGGCCAACATTTTTTGAAATTTTTAAGACACGCTGCGACGTTTTCCACTCA" +
	"ACCCCTCATTGGTCAAGGTTGGTTCGAAAAATGGTTATTTTTTCTCTTTCTCTTTCTCCTTATGGTTGGTTT" +
	"GGTTTGGTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGT" +
	"TTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTT" +
	"GGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGG" +
	"TTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTT" +
	"TGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTG" +
	"GTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGT" +
	"TTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTT" +
	"GGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGG" +
	"TTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTT" +
	"TGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTG" +
	"GTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGT" +
	"TTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTT" +
	"GGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGG" +
	"TTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTT" +
	"TGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTG" +
	"GTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGT" +
	"TTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTT" +
	"GGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGG" +
	"TTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTT" +
	"TGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTG" +
	"GTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGT" +
	"TTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTT" +
	"GGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGG" +
	"TTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTT" +
	"TGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTG" +
	"GTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGT" +
	"TTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTT" +
	"GGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGG" +
	"TTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTT" +
	"TGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTG" +
	"GTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGT" +
	"TTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTT" +
	"GGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGG" +
	"TTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTT" +
	"TGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTGGTTTG" +
	"GTTTGGTTTGGTTTGGTTTGGT"
