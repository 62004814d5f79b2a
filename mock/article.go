package mock

import (
	"context"

	"github.com/fwojciec/rsearch"
)

var _ rsearch.ArticleFetcher = (*ArticleFetcher)(nil)

// ArticleFetcher is a mock implementation of rsearch.ArticleFetcher.
type ArticleFetcher struct {
	FetchFn func(ctx context.Context, url string) (rsearch.WordCounts, error)
}

func (f *ArticleFetcher) Fetch(ctx context.Context, url string) (rsearch.WordCounts, error) {
	return f.FetchFn(ctx, url)
}

var _ rsearch.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of rsearch.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(text string) rsearch.WordCounts
}

func (t *Tokenizer) Tokenize(text string) rsearch.WordCounts {
	return t.TokenizeFn(text)
}
