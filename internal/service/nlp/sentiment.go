package nlp

import (
	"kex/internal/domain/analysis"
)

// Sentiment classifies the polarity of a token sequence by counting
// matches against the fixed positive and negative lexicons. The returned
// confidence is the match density |pos-neg| / (pos+neg), always in [0,1];
// a text with no lexicon matches is neutral with confidence 0.
func Sentiment(tokens []string) (label string, confidence float64) {
	var pos, neg int
	for _, t := range tokens {
		if positiveWords[t] {
			pos++
		}
		if negativeWords[t] {
			neg++
		}
	}

	score := pos - neg
	total := pos + neg
	if total > 0 {
		confidence = float64(abs(score)) / float64(total)
	}

	switch {
	case score > 0:
		label = analysis.SentimentPositive
	case score < 0:
		label = analysis.SentimentNegative
	default:
		label = analysis.SentimentNeutral
	}
	return label, confidence
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
