package summary

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"kex/internal/domain/analysis"
)

func TestLocalSummarizeSingleSentence(t *testing.T) {
	local := NewLocal(0)

	got := local.Summarize(context.Background(), "Go is a compiled language.")

	assert.Equal(t, "Go is a compiled language.", got.Text)
	assert.Equal(t, analysis.SummarySourceLocal, got.Source)
	assert.False(t, got.Degraded)
}

func TestLocalSummarizeExtendsShortFirstSentence(t *testing.T) {
	local := NewLocal(0)

	got := local.Summarize(context.Background(), "Go is fun. It compiles fast. It has goroutines.")

	assert.Equal(t, "Go is fun. It compiles fast.", got.Text)
}

func TestLocalSummarizeLongFirstSentenceStandsAlone(t *testing.T) {
	local := NewLocal(0)

	first := strings.Repeat("word ", 40) + "end."
	got := local.Summarize(context.Background(), first+" Second sentence.")

	assert.Equal(t, strings.TrimSpace(first), got.Text)
}

func TestLocalSummarizeTruncates(t *testing.T) {
	local := NewLocal(20)

	got := local.Summarize(context.Background(), "This sentence is clearly longer than the character budget allows.")

	assert.True(t, strings.HasSuffix(got.Text, "..."))
	assert.LessOrEqual(t, len(got.Text), 23)
}

func TestLocalSummarizeDeterministic(t *testing.T) {
	local := NewLocal(0)
	text := "Kubernetes cluster costs can spike without guardrails. Use the cluster autoscaler."

	first := local.Summarize(context.Background(), text)
	second := local.Summarize(context.Background(), text)

	assert.Equal(t, first, second)
}

func TestLocalSummarizeNoSentences(t *testing.T) {
	local := NewLocal(0)

	got := local.Summarize(context.Background(), "")

	assert.Empty(t, got.Text)
	assert.Equal(t, analysis.SummarySourceLocal, got.Source)
}
