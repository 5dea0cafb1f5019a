package analysis

import (
	"time"
)

// Sentiment labels assigned by the scorer
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Summary sources identify which strategy produced the summary
const (
	SummarySourceLocal  = "local"
	SummarySourceOpenAI = "openai"
)

// Analysis represents the structured metadata extracted from one input text.
// It is constructed once per analyzed text and never mutated after the store
// assigns its ID and timestamp.
type Analysis struct {
	ID              string    `json:"id"`
	Title           string    `json:"title,omitempty"`
	Text            string    `json:"text"`
	Summary         string    `json:"summary"`
	Topics          []string  `json:"topics"`
	Keywords        []string  `json:"keywords"`
	Sentiment       string    `json:"sentiment"`
	Confidence      float64   `json:"confidence"`
	SummarySource   string    `json:"summary_source"`
	SummaryDegraded bool      `json:"summary_degraded,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Summary is the output of a summarization strategy
type Summary struct {
	Text     string
	Source   string
	Degraded bool
}

// Filter defines criteria for searching stored analyses.
// Topic and Keyword are OR-combined when both are set.
type Filter struct {
	Topic   string
	Keyword string
}

// ItemError reports a single rejected item in a batch request
type ItemError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}
