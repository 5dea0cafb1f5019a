package summary

import (
	"context"
	"strings"

	"kex/internal/domain/analysis"
	"kex/internal/service/nlp"
)

// shortSummaryChars is the length under which the summary is extended
// with a second sentence.
const shortSummaryChars = 180

// Local is the deterministic summarization strategy: the first sentence of
// the text, extended with the second while the result stays short, then
// truncated to MaxChars. It has no external dependencies and never fails.
type Local struct {
	// MaxChars caps the summary length; 0 means no cap. Truncated
	// summaries end with an ellipsis marker.
	MaxChars int
}

// NewLocal creates the local heuristic summarizer
func NewLocal(maxChars int) *Local {
	return &Local{MaxChars: maxChars}
}

// Summarize produces a 1-2 sentence synopsis of text
func (l *Local) Summarize(_ context.Context, text string) analysis.Summary {
	sentences := nlp.Sentences(text)
	if len(sentences) == 0 {
		return analysis.Summary{Source: analysis.SummarySourceLocal}
	}

	summary := sentences[0]
	if len(sentences) > 1 && len(summary) < shortSummaryChars {
		summary += " " + sentences[1]
	}
	summary = nlp.Normalize(summary)

	if runes := []rune(summary); l.MaxChars > 0 && len(runes) > l.MaxChars {
		summary = strings.TrimSpace(string(runes[:l.MaxChars])) + "..."
	}

	return analysis.Summary{
		Text:   summary,
		Source: analysis.SummarySourceLocal,
	}
}
