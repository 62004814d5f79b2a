package rsearch

// Tokenizer splits article text into case-folded word occurrence counts.
type Tokenizer interface {
	Tokenize(text string) WordCounts
}
