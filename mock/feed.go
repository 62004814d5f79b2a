package mock

import (
	"context"

	"github.com/fwojciec/rsearch"
)

var _ rsearch.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of rsearch.FeedService.
type FeedService struct {
	ParseFileFn func(path string) ([]rsearch.Feed, error)
	FetchFn     func(ctx context.Context, url string) ([]rsearch.Item, error)
}

func (s *FeedService) ParseFile(path string) ([]rsearch.Feed, error) {
	return s.ParseFileFn(path)
}

func (s *FeedService) Fetch(ctx context.Context, url string) ([]rsearch.Item, error) {
	return s.FetchFn(ctx, url)
}

var _ rsearch.SiteLimiter = (*SiteLimiter)(nil)

// SiteLimiter is a mock implementation of rsearch.SiteLimiter.
type SiteLimiter struct {
	WaitFn func(ctx context.Context, site string) error
}

func (l *SiteLimiter) Wait(ctx context.Context, site string) error {
	return l.WaitFn(ctx, site)
}
