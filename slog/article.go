package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rsearch"
)

// Ensure ArticleFetcher implements rsearch.ArticleFetcher.
var _ rsearch.ArticleFetcher = (*ArticleFetcher)(nil)

// ArticleFetcher wraps an ArticleFetcher with timing and outcome logging.
type ArticleFetcher struct {
	next   rsearch.ArticleFetcher
	logger *slog.Logger
}

// NewArticleFetcher creates a new logging ArticleFetcher.
func NewArticleFetcher(next rsearch.ArticleFetcher, logger *slog.Logger) *ArticleFetcher {
	return &ArticleFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *ArticleFetcher) Fetch(ctx context.Context, url string) (rsearch.WordCounts, error) {
	begin := time.Now()
	words, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("article fetch failed", "url", url, "duration", time.Since(begin), "error", err)
		return nil, err
	}
	f.logger.Debug("article tokenized", "url", url, "words", len(words), "duration", time.Since(begin))
	return words, nil
}
