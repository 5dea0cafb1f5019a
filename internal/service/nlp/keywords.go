package nlp

// titleBoost is how many times each title token is repeated in the topic
// pool, so that subject-matter terms from the title surface in the top
// ranks even when the body mentions them once.
const titleBoost = 3

// Keywords returns up to limit noun-biased terms from text, ranked by
// frequency. All terms are lowercase tokens of the normalized text.
func Keywords(text string, limit int) []string {
	return Rank(Tokens(text), ProbableNoun, limit)
}

// Topics returns up to limit salient terms from text, ranked by frequency.
// Unlike Keywords it admits any non-stopword token, and tokens from the
// title are folded into the pool with a boosted count. Topics and keywords
// derive from the same ranking and are allowed to overlap.
func Topics(text, title string, limit int) []string {
	tokens := Tokens(text)
	if title != "" {
		for _, t := range Tokens(title) {
			for i := 0; i < titleBoost; i++ {
				tokens = append(tokens, t)
			}
		}
	}
	return Rank(tokens, nil, limit)
}
