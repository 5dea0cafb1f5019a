package analyzing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kex/internal/domain/analysis"
	"kex/internal/service/summary"
)

// memStore is an in-memory analysis.Store with the same OR-matching
// search semantics as the Postgres adapter.
type memStore struct {
	analyses []analysis.Analysis
}

func (s *memStore) Save(_ context.Context, a *analysis.Analysis) error {
	if a.ID == "" {
		a.ID = fmt.Sprintf("mem-%d", len(s.analyses)+1)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	s.analyses = append(s.analyses, *a)
	return nil
}

func (s *memStore) Find(_ context.Context, filter analysis.Filter) ([]analysis.Analysis, error) {
	var matches []analysis.Analysis
	for i := len(s.analyses) - 1; i >= 0; i-- {
		a := s.analyses[i]
		if filter.Topic == "" && filter.Keyword == "" {
			matches = append(matches, a)
			continue
		}
		if filter.Topic != "" && contains(a.Topics, filter.Topic) {
			matches = append(matches, a)
			continue
		}
		if filter.Keyword != "" && contains(a.Keywords, filter.Keyword) {
			matches = append(matches, a)
		}
	}
	return matches, nil
}

func (s *memStore) Get(_ context.Context, id string) (*analysis.Analysis, error) {
	for i := range s.analyses {
		if s.analyses[i].ID == id {
			return &s.analyses[i], nil
		}
	}
	return nil, analysis.ErrNotFound
}

func contains(terms []string, term string) bool {
	for _, t := range terms {
		if t == term {
			return true
		}
	}
	return false
}

func newTestService(store analysis.Store) *Service {
	return New(store, summary.NewLocal(0), nil, Config{EventsTopic: "analysis"})
}

func TestAnalyzeAssemblesResult(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)

	text := "Kubernetes cluster costs can spike without guardrails. " +
		"Use the cluster autoscaler and vertical pod autoscaler to right-size nodes."

	a, err := svc.Analyze(context.Background(), text, "Kubernetes cost controls")
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.False(t, a.CreatedAt.IsZero())
	assert.Equal(t, "Kubernetes cost controls", a.Title)
	assert.Equal(t, "Kubernetes cluster costs can spike without guardrails. Use the cluster autoscaler and vertical pod autoscaler to right-size nodes.", a.Summary)
	assert.Equal(t, analysis.SummarySourceLocal, a.SummarySource)
	assert.Equal(t, analysis.SentimentNeutral, a.Sentiment)
	assert.LessOrEqual(t, len(a.Topics), 3)
	assert.LessOrEqual(t, len(a.Keywords), 3)
	assert.Contains(t, a.Topics, "kubernetes")
	assert.Contains(t, a.Keywords, "autoscaler")
	assert.Contains(t, a.Keywords, "kubernetes")
	require.Len(t, store.analyses, 1)
}

func TestAnalyzeRejectsEmptyText(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Analyze(context.Background(), text, "")
		assert.ErrorIs(t, err, analysis.ErrEmptyText)
	}

	assert.Empty(t, store.analyses)
}

func TestAnalyzeIdempotent(t *testing.T) {
	svc := newTestService(&memStore{})
	text := "The good team made great progress. A strong win for everyone."

	first, err := svc.Analyze(context.Background(), text, "Progress")
	require.NoError(t, err)

	second, err := svc.Analyze(context.Background(), text, "Progress")
	require.NoError(t, err)

	assert.Equal(t, first.Keywords, second.Keywords)
	assert.Equal(t, first.Topics, second.Topics)
	assert.Equal(t, first.Sentiment, second.Sentiment)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Confidence, second.Confidence)
}

func TestAnalyzeDegradesGracefullyOnDegenerateText(t *testing.T) {
	svc := newTestService(&memStore{})

	a, err := svc.Analyze(context.Background(), "... !!! ...", "")
	require.NoError(t, err)

	assert.Empty(t, a.Keywords)
	assert.Empty(t, a.Topics)
	assert.Equal(t, analysis.SentimentNeutral, a.Sentiment)
	assert.Zero(t, a.Confidence)
}

func TestAnalyzeBatchIsolatesFailures(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)

	items, itemErrors := svc.AnalyzeBatch(context.Background(), []string{
		"",
		"The rollout was a success. Users love the feature.",
		"   ",
		"Costs declined after the problem was fixed.",
	})

	require.Len(t, items, 2)
	require.Len(t, itemErrors, 2)
	assert.Equal(t, 0, itemErrors[0].Index)
	assert.Equal(t, 2, itemErrors[1].Index)
	assert.Len(t, store.analyses, 2)
}

func TestSearchByTopicFindsAnalyzedText(t *testing.T) {
	svc := newTestService(&memStore{})

	text := "Kubernetes cluster costs can spike without guardrails. " +
		"Use the cluster autoscaler and vertical pod autoscaler to right-size nodes."

	saved, err := svc.Analyze(context.Background(), text, "Kubernetes cost controls")
	require.NoError(t, err)

	found, err := svc.Search(context.Background(), analysis.Filter{Topic: "kubernetes"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, saved.ID, found[0].ID)

	got, err := svc.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Summary, got.Summary)
}
