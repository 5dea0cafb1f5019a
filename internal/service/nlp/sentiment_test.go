package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kex/internal/domain/analysis"
)

func TestSentiment(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantLabel      string
		wantConfidence float64
	}{
		{
			name:           "positive",
			text:           "The launch was a great success and the team is excited",
			wantLabel:      analysis.SentimentPositive,
			wantConfidence: 1.0,
		},
		{
			name:           "negative",
			text:           "A terrible failure caused by a known problem",
			wantLabel:      analysis.SentimentNegative,
			wantConfidence: 1.0,
		},
		{
			name:           "mixed leans negative",
			text:           "Good progress but a bad decline and another loss",
			wantLabel:      analysis.SentimentNegative,
			wantConfidence: 0.2,
		},
		{
			name:           "balanced is neutral",
			text:           "One good thing and one bad thing",
			wantLabel:      analysis.SentimentNeutral,
			wantConfidence: 0,
		},
		{
			name:           "no lexicon matches is neutral with zero confidence",
			text:           "The quarterly report covers infrastructure spending",
			wantLabel:      analysis.SentimentNeutral,
			wantConfidence: 0,
		},
		{
			name:           "empty token list",
			text:           "",
			wantLabel:      analysis.SentimentNeutral,
			wantConfidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, confidence := Sentiment(Tokens(tt.text))
			assert.Equal(t, tt.wantLabel, label)
			assert.InDelta(t, tt.wantConfidence, confidence, 1e-9)
			assert.GreaterOrEqual(t, confidence, 0.0)
			assert.LessOrEqual(t, confidence, 1.0)
		})
	}
}
