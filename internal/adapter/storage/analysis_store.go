// internal/adapter/storage/analysis_store.go

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"kex/internal/domain/analysis"
)

// AnalysisStore implements storage for analysis results
type AnalysisStore struct {
	db *pgxpool.Pool
}

// NewAnalysisStore creates a new analysis store
func NewAnalysisStore(db *pgxpool.Pool) *AnalysisStore {
	return &AnalysisStore{
		db: db,
	}
}

// EnsureSchema creates the analyses table if it does not exist
func (s *AnalysisStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY,
			title TEXT,
			text TEXT NOT NULL,
			summary TEXT NOT NULL,
			topics TEXT[] NOT NULL,
			keywords TEXT[] NOT NULL,
			sentiment TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			summary_source TEXT NOT NULL,
			summary_degraded BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL
		)
	`

	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("error creating analyses table: %w", err)
	}

	return nil
}

// Save persists an analysis, assigning its ID and creation time when unset
func (s *AnalysisStore) Save(ctx context.Context, a *analysis.Analysis) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO analyses (
			id, title, text, summary, topics, keywords,
			sentiment, confidence, summary_source, summary_degraded, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11
		)
	`

	_, err := s.db.Exec(
		ctx,
		query,
		a.ID,
		a.Title,
		a.Text,
		a.Summary,
		a.Topics,
		a.Keywords,
		a.Sentiment,
		a.Confidence,
		a.SummarySource,
		a.SummaryDegraded,
		a.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Get retrieves an analysis by ID
func (s *AnalysisStore) Get(ctx context.Context, id string) (*analysis.Analysis, error) {
	query := `
		SELECT
			id, title, text, summary, topics, keywords,
			sentiment, confidence, summary_source, summary_degraded, created_at
		FROM analyses
		WHERE id = $1
	`

	var a analysis.Analysis
	err := s.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Title,
		&a.Text,
		&a.Summary,
		&a.Topics,
		&a.Keywords,
		&a.Sentiment,
		&a.Confidence,
		&a.SummarySource,
		&a.SummaryDegraded,
		&a.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, analysis.ErrNotFound
		}
		return nil, fmt.Errorf("error querying analysis: %w", err)
	}

	return &a, nil
}

// Find returns analyses matching the filter, most recent first. Topic and
// keyword filters are OR-combined, matching a lowercase term against the
// stored topic or keyword lists.
func (s *AnalysisStore) Find(ctx context.Context, filter analysis.Filter) ([]analysis.Analysis, error) {
	query := `
		SELECT
			id, title, text, summary, topics, keywords,
			sentiment, confidence, summary_source, summary_degraded, created_at
		FROM analyses
	`

	var conditions []string
	var args []interface{}

	if filter.Topic != "" {
		conditions = append(conditions, fmt.Sprintf("lower($%d) = ANY(topics)", len(args)+1))
		args = append(args, filter.Topic)
	}

	if filter.Keyword != "" {
		conditions = append(conditions, fmt.Sprintf("lower($%d) = ANY(keywords)", len(args)+1))
		args = append(args, filter.Keyword)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " OR ")
	}

	query += " ORDER BY created_at DESC, id LIMIT 100"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var analyses []analysis.Analysis
	for rows.Next() {
		var a analysis.Analysis

		err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Text,
			&a.Summary,
			&a.Topics,
			&a.Keywords,
			&a.Sentiment,
			&a.Confidence,
			&a.SummarySource,
			&a.SummaryDegraded,
			&a.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning analysis: %w", err)
		}

		analyses = append(analyses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analyses: %w", err)
	}

	return analyses, nil
}
