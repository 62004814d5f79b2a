// Package tokenizer splits article text into case-folded word counts.
// Words are runs of letters and digits; everything else is a boundary.
// No stemming or stop-word removal is applied - a query term matches
// exactly the words that appear in the text.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/fwojciec/rsearch"
)

// Ensure Tokenizer implements rsearch.Tokenizer at compile time.
var _ rsearch.Tokenizer = (*Tokenizer)(nil)

// Tokenizer counts case-folded word occurrences.
type Tokenizer struct{}

// New creates a Tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize lower-cases text, splits it on non-alphanumeric boundaries,
// and returns the occurrence count of each word.
func (t *Tokenizer) Tokenize(text string) rsearch.WordCounts {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	counts := make(rsearch.WordCounts, len(words))
	for _, word := range words {
		counts[word]++
	}
	return counts
}
