package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/snpify/snpify-server/internal/domain"
)

// handleExport serves a finished analysis as a downloadable report in JSON
// or CSV form.
func (s *Server) handleExport(c *gin.Context) {
	result, err := s.svc.Get(c.Param("id"))
	if err != nil {
		s.errorResponse(c, err)
		return
	}
	if !result.Status.Terminal() {
		s.errorResponse(c, domain.NewAnalysisError(domain.ErrCodeValidation,
			fmt.Sprintf("analysis %s is still %s; only finished analyses can be exported",
				result.ID, result.Status)))
		return
	}

	switch c.Param("format") {
	case "json":
		c.Header("Content-Disposition",
			fmt.Sprintf("attachment; filename=%s.json", result.ID))
		c.JSON(http.StatusOK, result)

	case "csv":
		body, err := variantsCSV(result.Variants)
		if err != nil {
			s.errorResponse(c, fmt.Errorf("csv export failed: %w", err))
			return
		}
		c.Header("Content-Disposition",
			fmt.Sprintf("attachment; filename=%s.csv", result.ID))
		c.Data(http.StatusOK, "text/csv", body)

	default:
		s.errorResponse(c, domain.NewAnalysisError(domain.ErrCodeValidation,
			fmt.Sprintf("unsupported export format %q; use json or csv", c.Param("format"))))
	}
}

func variantsCSV(variants []domain.Variant) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"id", "type", "position", "chromosome", "gene",
		"ref_allele", "alt_allele", "rs_id", "mutation", "consequence",
		"impact", "clinical_significance", "confidence",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, v := range variants {
		row := []string{
			v.ID, string(v.Type), strconv.Itoa(v.Position), v.Chromosome, string(v.Gene),
			v.RefAllele, v.AltAllele, v.RSID, v.Mutation, v.Consequence,
			string(v.Impact), string(v.ClinicalSignificance),
			strconv.FormatFloat(v.Confidence, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
