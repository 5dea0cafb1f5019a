package nlp

import "strings"

// Fixed lexicons, loaded once at package init and never mutated, so they
// are safe to share across concurrent analyses.

var stopwords = wordSet(`
	a an and the is are was were be been being am do does did doing have has had having
	i me my we our you your he she it they them this that these those here there
	of on in at by for from to with without into over under as about above below
	up down not no nor so too very can will just than then now out off or if but
`)

// verbHints lists frequent verb forms that the noun-likeness heuristic
// rejects outright.
var verbHints = wordSet(`
	be been being am is are was were do does did doing have has had having
	say says said make makes made go goes went going take takes took
`)

var positiveWords = wordSet(`
	good great excellent positive progress success happy love like benefit
	improve improved improvement strong growth win wins winning excited
`)

var negativeWords = wordSet(`
	bad poor terrible negative fail failure sad hate dislike issue problem
	problems weak decline loss losses losing concerned
`)

func wordSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}

// ProbableNoun reports whether a token looks noun-like. This is a surface
// heuristic, not part-of-speech tagging: known verb forms are rejected, as
// are longer tokens with participle suffixes.
func ProbableNoun(token string) bool {
	if verbHints[token] {
		return false
	}
	if len(token) > 5 && (strings.HasSuffix(token, "ing") || strings.HasSuffix(token, "ed")) {
		return false
	}
	return true
}
