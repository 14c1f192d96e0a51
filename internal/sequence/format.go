package sequence

import (
	"fmt"
	"strings"

	"github.com/snpify/snpify-server/internal/domain"
)

// Format identifies the layout of an uploaded sequence file.
type Format string

const (
	FormatFASTA Format = "FASTA"
	FormatFASTQ Format = "FASTQ"
	FormatRaw   Format = "RAW_SEQUENCE"
)

// DetectFormat guesses the file format from its content using the same
// heuristics the upload path applies: a '>' header means FASTA, an '@'
// header means FASTQ, anything else is treated as a raw sequence.
func DetectFormat(content string) Format {
	trimmed := strings.TrimSpace(content)
	switch {
	case strings.HasPrefix(trimmed, ">"):
		return FormatFASTA
	case strings.HasPrefix(trimmed, "@"):
		return FormatFASTQ
	default:
		return FormatRaw
	}
}

// ExtractSequence pulls the first sequence out of uploaded file content.
// FASTA files contribute every non-header line of the first record; FASTQ
// files contribute the read line of the first record; raw content is
// returned as-is. The returned sequence is not yet validated.
func ExtractSequence(content string) (string, Format, error) {
	format := DetectFormat(content)
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", format, domain.NewValidationError(domain.EmptyInput, "uploaded file is empty")
	}

	switch format {
	case FormatFASTA:
		var b strings.Builder
		seen := false
		for _, line := range strings.Split(trimmed, "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, ">") {
				if seen {
					break // only the first record
				}
				seen = true
				continue
			}
			b.WriteString(line)
		}
		if b.Len() == 0 {
			return "", format, domain.NewValidationError(domain.EmptyInput,
				"FASTA file contains headers but no sequence data")
		}
		return b.String(), format, nil

	case FormatFASTQ:
		lines := strings.Split(trimmed, "\n")
		if len(lines) < 2 {
			return "", format, fmt.Errorf("FASTQ record truncated: %w",
				domain.NewValidationError(domain.EmptyInput, "FASTQ file has no read line"))
		}
		return strings.TrimSpace(lines[1]), format, nil

	default:
		return trimmed, format, nil
	}
}
