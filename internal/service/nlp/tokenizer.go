package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

// punctReplacer maps common unicode punctuation to ASCII so that word and
// sentence boundaries survive copy-pasted text.
var punctReplacer = strings.NewReplacer(
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
)

var (
	wordPattern  = regexp.MustCompile(`[a-z][a-z\-']+`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Normalize trims the text, maps unicode punctuation to ASCII and collapses
// runs of whitespace into single spaces. An input of only whitespace
// normalizes to the empty string.
func Normalize(text string) string {
	text = punctReplacer.Replace(strings.TrimSpace(text))
	return spacePattern.ReplaceAllString(text, " ")
}

// Sentences splits text on sentence-ending punctuation (".", "!", "?")
// followed by whitespace. Malformed input yields at most one sentence,
// never an error.
func Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if !isSentenceEnd(r) {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Tokens returns the lowercase word tokens of text with stopwords removed.
// A token is a run of letters with internal hyphens or apostrophes, at
// least two characters long. Punctuation-only input yields an empty slice.
func Tokens(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if !stopwords[w] {
			tokens = append(tokens, w)
		}
	}
	return tokens
}
