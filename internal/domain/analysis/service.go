// internal/domain/analysis/service.go

package analysis

import (
	"context"
	"errors"
)

// Common errors surfaced across the analysis pipeline
var (
	// ErrEmptyText is returned when an input text is empty or whitespace
	// after normalization. It is the only per-item hard failure.
	ErrEmptyText = errors.New("empty input text")

	// ErrNotFound is returned when a stored analysis cannot be found
	ErrNotFound = errors.New("analysis not found")
)

// Service defines the interface for running and retrieving analyses
type Service interface {
	// Analyze runs the full pipeline on a single text and persists the result
	Analyze(ctx context.Context, text, title string) (*Analysis, error)

	// AnalyzeBatch analyzes each text independently. A rejected item does
	// not abort its siblings; rejections are reported alongside successes.
	AnalyzeBatch(ctx context.Context, texts []string) ([]Analysis, []ItemError)

	// Search returns stored analyses matching the filter, most recent first
	Search(ctx context.Context, filter Filter) ([]Analysis, error)

	// GetByID returns a specific stored analysis
	GetByID(ctx context.Context, id string) (*Analysis, error)
}

// Store defines persistence for analyses
type Store interface {
	// Save persists an analysis, assigning its ID and creation time
	Save(ctx context.Context, a *Analysis) error

	// Find returns analyses matching the filter, most recent first
	Find(ctx context.Context, filter Filter) ([]Analysis, error)

	// Get returns the analysis with the given ID
	Get(ctx context.Context, id string) (*Analysis, error)
}

// Summarizer produces a 1-2 sentence synopsis of a text. Implementations
// must not fail: a strategy backed by a remote provider is expected to
// recover internally and degrade to a deterministic local result.
type Summarizer interface {
	Summarize(ctx context.Context, text string) Summary
}
