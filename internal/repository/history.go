// Package repository persists completed analyses to a local SQLite database
// so statistics survive restarts. The store is optional; when disabled the
// server serves statistics from its in-memory result cache only.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/snpify/snpify-server/internal/domain"
)

// HistoryStore records terminal analysis results in SQLite.
type HistoryStore struct {
	db     *sql.DB
	dbPath string
	log    *logrus.Entry
}

// NewHistoryStore opens (or creates) the history database at dbPath and
// ensures the schema exists.
func NewHistoryStore(dbPath string, logger *logrus.Logger) (*HistoryStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for concurrent readers while an analysis is being recorded.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &HistoryStore{
		db:     db,
		dbPath: dbPath,
		log:    logger.WithField("component", "history"),
	}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		gene TEXT NOT NULL,
		algorithm TEXT NOT NULL,
		total_variants INTEGER NOT NULL DEFAULT 0,
		pathogenic_variants INTEGER NOT NULL DEFAULT 0,
		likely_pathogenic_variants INTEGER NOT NULL DEFAULT 0,
		uncertain_variants INTEGER NOT NULL DEFAULT 0,
		benign_variants INTEGER NOT NULL DEFAULT 0,
		risk_score REAL NOT NULL DEFAULT 0,
		risk_level TEXT NOT NULL DEFAULT '',
		processing_time REAL NOT NULL DEFAULT 0,
		error_code TEXT DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_gene ON analyses(gene);
	CREATE INDEX IF NOT EXISTS idx_analyses_status ON analyses(status);
	CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
	`

	_, err := db.Exec(schema)
	return err
}

// Record stores a terminal analysis result. Non-terminal results are
// rejected; a running analysis has nothing stable to persist.
func (s *HistoryStore) Record(ctx context.Context, result *domain.AnalysisResult) error {
	if !result.Status.Terminal() {
		return fmt.Errorf("cannot record analysis %s in non-terminal status %s: %w",
			result.ID, result.Status, domain.ErrInvalidArgument)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO analyses (
			id, status, gene, algorithm,
			total_variants, pathogenic_variants, likely_pathogenic_variants,
			uncertain_variants, benign_variants,
			risk_score, risk_level, processing_time, error_code, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.ID, string(result.Status), string(result.Gene), string(result.Algorithm),
		result.Summary.TotalVariants, result.Summary.PathogenicVariants,
		result.Summary.LikelyPathogenicVariants, result.Summary.UncertainVariants,
		result.Summary.BenignVariants,
		result.Summary.RiskScore, string(result.Summary.OverallRisk),
		result.Metadata.ProcessingTime, result.ErrorCode, result.StartTime,
	)
	if err != nil {
		return fmt.Errorf("failed to record analysis %s: %w", result.ID, err)
	}

	s.log.WithFields(logrus.Fields{
		"analysis_id": result.ID,
		"status":      result.Status,
	}).Debug("Analysis recorded in history")
	return nil
}

// Statistics aggregates the recorded analyses.
func (s *HistoryStore) Statistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		AnalysesByGene:      make(map[string]int),
		AnalysesByAlgorithm: make(map[string]int),
	}

	var avgProcessing sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(total_variants), 0),
			COALESCE(SUM(pathogenic_variants), 0),
			AVG(CASE WHEN status = ? THEN processing_time END)
		FROM analyses`,
		string(domain.StatusCompleted), string(domain.StatusFailed), string(domain.StatusCompleted),
	).Scan(
		&stats.TotalAnalyses, &stats.CompletedAnalyses, &stats.FailedAnalyses,
		&stats.TotalVariants, &stats.PathogenicVariants, &avgProcessing,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate statistics: %w", err)
	}
	if avgProcessing.Valid {
		stats.AverageProcessingTime = avgProcessing.Float64
	}

	if err := s.countBy(ctx, "gene", stats.AnalysesByGene); err != nil {
		return nil, err
	}
	if err := s.countBy(ctx, "algorithm", stats.AnalysesByAlgorithm); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *HistoryStore) countBy(ctx context.Context, column string, dest map[string]int) error {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT %s, COUNT(*) FROM analyses GROUP BY %s", column, column))
	if err != nil {
		return fmt.Errorf("failed to count analyses by %s: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("failed to scan %s count: %w", column, err)
		}
		dest[key] = count
	}
	return rows.Err()
}

// HistoryEntry is one row of the recorded analysis history.
type HistoryEntry struct {
	ID             string                `json:"id"`
	Status         domain.AnalysisStatus `json:"status"`
	Gene           domain.Gene           `json:"gene"`
	Algorithm      domain.Algorithm      `json:"algorithm"`
	TotalVariants  int                   `json:"total_variants"`
	RiskScore      float64               `json:"risk_score"`
	RiskLevel      domain.RiskLevel      `json:"risk_level"`
	ProcessingTime float64               `json:"processing_time"`
	CreatedAt      time.Time             `json:"created_at"`
}

// Recent returns the most recently recorded analyses, newest first.
func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, status, gene, algorithm, total_variants, risk_score, risk_level,
		       processing_time, created_at
		FROM analyses ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var status, gene, algorithm, level string
		if err := rows.Scan(&e.ID, &status, &gene, &algorithm, &e.TotalVariants,
			&e.RiskScore, &level, &e.ProcessingTime, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.Status = domain.AnalysisStatus(status)
		e.Gene = domain.Gene(gene)
		e.Algorithm = domain.Algorithm(algorithm)
		e.RiskLevel = domain.RiskLevel(level)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes one analysis from the history.
func (s *HistoryStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("analysis %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Close closes the underlying database.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}
