// Package slog provides logging decorators for rsearch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rsearch"
)

// Ensure FeedService implements rsearch.FeedService.
var _ rsearch.FeedService = (*FeedService)(nil)

// FeedService wraps a FeedService with timing and outcome logging.
type FeedService struct {
	next   rsearch.FeedService
	logger *slog.Logger
}

// NewFeedService creates a new logging FeedService.
func NewFeedService(next rsearch.FeedService, logger *slog.Logger) *FeedService {
	return &FeedService{next: next, logger: logger}
}

// ParseFile delegates to the wrapped service and logs the outcome.
func (s *FeedService) ParseFile(path string) ([]rsearch.Feed, error) {
	begin := time.Now()
	feeds, err := s.next.ParseFile(path)
	if err != nil {
		s.logger.Error("feed list parse failed", "path", path, "duration", time.Since(begin), "error", err)
		return nil, err
	}
	s.logger.Debug("feed list parsed", "path", path, "feeds", len(feeds), "duration", time.Since(begin))
	return feeds, nil
}

// Fetch delegates to the wrapped service and logs the outcome.
func (s *FeedService) Fetch(ctx context.Context, url string) ([]rsearch.Item, error) {
	begin := time.Now()
	items, err := s.next.Fetch(ctx, url)
	if err != nil {
		s.logger.Error("feed fetch failed", "url", url, "duration", time.Since(begin), "error", err)
		return nil, err
	}
	s.logger.Debug("feed fetched", "url", url, "items", len(items), "duration", time.Since(begin))
	return items, nil
}
