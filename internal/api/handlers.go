package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/snpify/snpify-server/internal/analysis"
	"github.com/snpify/snpify-server/internal/domain"
	"github.com/snpify/snpify-server/internal/repository"
	"github.com/snpify/snpify-server/internal/sequence"
)

type analyzeSequenceRequest struct {
	Sequence     string `json:"sequence" binding:"required"`
	Gene         string `json:"gene" binding:"required"`
	Algorithm    string `json:"algorithm"`
	SequenceType string `json:"sequence_type"`
}

func (s *Server) handleAnalyzeSequence(c *gin.Context) {
	var req analyzeSequenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.errorResponse(c, domain.NewAnalysisError(domain.ErrCodeValidation,
			fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	result, err := s.svc.Submit(c.Request.Context(), analysis.Request{
		Sequence:  req.Sequence,
		Gene:      domain.Gene(req.Gene),
		Algorithm: s.algorithmOrDefault(req.Algorithm),
		Kind:      domain.SequenceKind(req.SequenceType),
		InputType: "raw_sequence",
	})
	if err != nil {
		s.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusAccepted, result)
}

func (s *Server) handleAnalyzeFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		s.errorResponse(c, domain.NewAnalysisError(domain.ErrCodeValidation,
			fmt.Sprintf("missing file upload: %v", err)))
		return
	}
	if fileHeader.Size > s.cfg.Analysis.MaxFileSize {
		s.errorResponse(c, domain.NewAnalysisError(domain.ErrCodeValidation,
			fmt.Sprintf("file size %d exceeds the limit of %d bytes",
				fileHeader.Size, s.cfg.Analysis.MaxFileSize)))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.errorResponse(c, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, s.cfg.Analysis.MaxFileSize+1))
	if err != nil {
		s.errorResponse(c, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	seq, format, err := sequence.ExtractSequence(string(content))
	if err != nil {
		s.errorResponse(c, err)
		return
	}

	result, err := s.svc.Submit(c.Request.Context(), analysis.Request{
		Sequence:  seq,
		Gene:      domain.Gene(c.PostForm("gene")),
		Algorithm: s.algorithmOrDefault(c.PostForm("algorithm")),
		InputType: string(format),
		FileName:  fileHeader.Filename,
		FileSize:  int(fileHeader.Size),
	})
	if err != nil {
		s.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusAccepted, result)
}

func (s *Server) handleGetAnalysis(c *gin.Context) {
	result, err := s.svc.Get(c.Param("id"))
	if err != nil {
		s.errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleProgress(c *gin.Context) {
	result, err := s.svc.Get(c.Param("id"))
	if err != nil {
		s.errorResponse(c, err)
		return
	}

	resp := gin.H{
		"id":       result.ID,
		"status":   result.Status,
		"progress": result.Progress,
		"stages":   analysis.StageBreakdown(result.Progress),
	}
	if result.Error != "" {
		resp["error"] = result.Error
		resp["error_code"] = result.ErrorCode
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleDeleteAnalysis(c *gin.Context) {
	if err := s.svc.Delete(c.Param("id")); err != nil {
		s.errorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleStatistics(c *gin.Context) {
	stats, err := s.svc.Statistics(c.Request.Context())
	if err != nil {
		s.errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		s.errorResponse(c, domain.NewAnalysisError(domain.ErrCodeValidation,
			fmt.Sprintf("limit must be an integer between 1 and 500, got %q", c.Query("limit"))))
		return
	}

	entries, err := s.history.Recent(c.Request.Context(), limit)
	if err != nil {
		s.errorResponse(c, err)
		return
	}
	if entries == nil {
		entries = []repository.HistoryEntry{}
	}
	c.JSON(http.StatusOK, gin.H{
		"analyses": entries,
		"count":    len(entries),
	})
}

func (s *Server) handleDeleteHistory(c *gin.Context) {
	if err := s.history.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.errorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": serverVersion,
		"uptime":  time.Since(s.startedAt).Seconds(),
	})
}

func (s *Server) algorithmOrDefault(algorithm string) domain.Algorithm {
	if algorithm == "" {
		return domain.Algorithm(s.cfg.Analysis.DefaultAlgorithm)
	}
	return domain.Algorithm(algorithm)
}
