// internal/service/analyzing/service.go

package analyzing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"

	"kex/internal/domain/analysis"
	"kex/internal/service/nlp"
)

// maxTerms is the number of keywords and topics assembled per analysis
const maxTerms = 3

// Config contains configuration for the analysis service
type Config struct {
	EventsTopic string
}

// Service implements the analysis.Service interface: it validates input,
// runs the local text pipeline plus the summarizer, assembles the result,
// persists it and publishes a completion event.
type Service struct {
	store      analysis.Store
	summarizer analysis.Summarizer
	eventBus   *nats.Conn
	config     Config
}

// New creates a new analysis service
func New(store analysis.Store, summarizer analysis.Summarizer, eventBus *nats.Conn, config Config) *Service {
	return &Service{
		store:      store,
		summarizer: summarizer,
		eventBus:   eventBus,
		config:     config,
	}
}

// Analyze runs the full pipeline on a single text and persists the result.
// Empty or whitespace-only text is rejected with analysis.ErrEmptyText;
// degenerate but non-empty input (for example, only punctuation) degrades
// to empty keyword and topic lists instead of failing.
func (s *Service) Analyze(ctx context.Context, text, title string) (*analysis.Analysis, error) {
	normalized := nlp.Normalize(text)
	if normalized == "" {
		return nil, analysis.ErrEmptyText
	}

	tokens := nlp.Tokens(normalized)
	sentiment, confidence := nlp.Sentiment(tokens)
	summary := s.summarizer.Summarize(ctx, normalized)

	a := &analysis.Analysis{
		Title:           title,
		Text:            normalized,
		Summary:         summary.Text,
		Topics:          nlp.Topics(normalized, title, maxTerms),
		Keywords:        nlp.Keywords(normalized, maxTerms),
		Sentiment:       sentiment,
		Confidence:      confidence,
		SummarySource:   summary.Source,
		SummaryDegraded: summary.Degraded,
	}

	if err := s.store.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("error saving analysis: %w", err)
	}

	s.publishCompleted(a)

	return a, nil
}

// AnalyzeBatch analyzes each text independently. One rejected item does
// not abort the batch; rejections are reported alongside successes.
func (s *Service) AnalyzeBatch(ctx context.Context, texts []string) ([]analysis.Analysis, []analysis.ItemError) {
	var items []analysis.Analysis
	var itemErrors []analysis.ItemError

	for i, text := range texts {
		a, err := s.Analyze(ctx, text, "")
		if err != nil {
			itemErrors = append(itemErrors, analysis.ItemError{
				Index: i,
				Error: err.Error(),
			})
			continue
		}
		items = append(items, *a)
	}

	return items, itemErrors
}

// Search returns stored analyses matching the filter, most recent first
func (s *Service) Search(ctx context.Context, filter analysis.Filter) ([]analysis.Analysis, error) {
	return s.store.Find(ctx, filter)
}

// GetByID returns a specific stored analysis
func (s *Service) GetByID(ctx context.Context, id string) (*analysis.Analysis, error) {
	return s.store.Get(ctx, id)
}

// publishCompleted publishes the finished analysis on the events topic.
// Publishing is best-effort; a failure is logged, not propagated.
func (s *Service) publishCompleted(a *analysis.Analysis) {
	if s.eventBus == nil {
		return
	}

	data, err := json.Marshal(a)
	if err != nil {
		log.Printf("Failed to marshal analysis event: %v", err)
		return
	}

	topic := fmt.Sprintf("%s.completed", s.config.EventsTopic)
	if err := s.eventBus.Publish(topic, data); err != nil {
		log.Printf("Failed to publish analysis event: %v", err)
	}
}
