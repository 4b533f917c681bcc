// Package normalize implements the text cleaning applied to every review
// before it reaches the classifier or the fine-tuning pipeline.
package normalize

import (
	"regexp"
	"strings"
)

// Stopwords is the fixed stopword set removed by Clean. The list matches the
// one the training data was cleaned with, so serving-time input stays
// consistent with what the model saw.
var Stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "if": {},
	"then": {}, "so": {}, "of": {}, "at": {}, "by": {}, "for": {}, "to": {},
	"in": {}, "on": {}, "with": {}, "as": {}, "is": {}, "it": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "am": {}, "are": {}, "was": {},
	"were": {}, "be": {}, "been": {}, "being": {}, "i": {}, "you": {},
	"he": {}, "she": {}, "we": {}, "they": {}, "them": {}, "me": {},
	"my": {}, "mine": {}, "your": {}, "yours": {}, "his": {}, "her": {},
	"its": {}, "our": {}, "ours": {}, "their": {}, "theirs": {},
}

var (
	digitRe     = regexp.MustCompile(`[0-9]`)
	nonLetterRe = regexp.MustCompile(`[^a-z\s']`)
	// A word with an optional internal apostrophe ("don't"), or a plain
	// word. Stray apostrophes match neither branch and are dropped.
	tokenRe = regexp.MustCompile(`[a-z]+'[a-z]+|[a-z]+`)
)

// Tokens lowercases s, strips digits and punctuation (keeping apostrophes
// inside words), and returns the remaining tokens with stopwords removed.
func Tokens(s string) []string {
	t := strings.ToLower(s)
	t = digitRe.ReplaceAllString(t, " ")
	t = nonLetterRe.ReplaceAllString(t, " ")

	var tokens []string
	for _, tok := range tokenRe.FindAllString(t, -1) {
		if _, stop := Stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Clean returns the normalized form of s: cleaned tokens joined by single
// spaces. Empty, whitespace-only, or all-stopword input yields "".
// Clean is idempotent: Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	return strings.Join(Tokens(s), " ")
}
